package quiz

type Field string

const (
	FieldPersonality Field = "personality"
	FieldPace        Field = "pace"
	FieldBudgetLevel Field = "budget_level"
	FieldTravelWith  Field = "travel_with"
	FieldDaysRange   Field = "days_range"
	FieldInterests   Field = "interests"
)

type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Icon     string `json:"icon,omitempty"`
	Gradient string `json:"gradient,omitempty"`
}

type Step struct {
	Field        Field    `json:"key"`
	Question     string   `json:"question"`
	Illustration string   `json:"illustration,omitempty"`
	Options      []Option `json:"options"`
	MultiSelect  bool     `json:"multi_select"`
}

func (s Step) HasOption(value string) bool {
	for _, o := range s.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

type text map[Locale]string

type optionDef struct {
	value    string
	label    text
	icon     string
	gradient string
}

type stepDef struct {
	field        Field
	question     text
	illustration string
	multiSelect  bool
	options      []optionDef
}

// stepDefs is the fixed quiz order. Interests stays last: completion hinges on it.
var stepDefs = []stepDef{
	{
		field:        FieldPersonality,
		question:     text{Arabic: "ما الذي يثيرك أكثر عند السفر؟", English: "What excites you most when you travel?"},
		illustration: "globe",
		options: []optionDef{
			{"culture", text{Arabic: "اكتشاف ثقافات جديدة", English: "Discovering new cultures"}, "landmark", "from-blue-500 to-cyan-500"},
			{"relaxing", text{Arabic: "الاسترخاء والانفصال", English: "Relaxing and disconnecting"}, "palmtree", "from-emerald-500 to-teal-500"},
			{"luxury", text{Arabic: "الراحة والفخامة", English: "Comfort and luxury"}, "sparkles", "from-amber-500 to-orange-500"},
			{"adventure", text{Arabic: "المغامرة والتحديات", English: "Adventure and challenges"}, "mountain", "from-red-500 to-rose-500"},
		},
	},
	{
		field:        FieldPace,
		question:     text{Arabic: "يوم سفرك المثالي يبدو كالتالي:", English: "Your ideal travel day looks like:"},
		illustration: "sun",
		options: []optionDef{
			{"packed", text{Arabic: "جدول مزدحم من الصباح حتى الليل", English: "Packed from morning to night"}, "plane", "from-blue-500 to-cyan-500"},
			{"balanced", text{Arabic: "نشاط رئيسي واحد، وبقية اليوم حر", English: "One main activity, the rest free"}, "map-pin", "from-cyan-500 to-teal-500"},
			{"spontaneous", text{Arabic: "لا خطة، تدفق مع الأحداث", English: "No plan, go with the flow"}, "waves", "from-teal-500 to-green-500"},
		},
	},
	{
		field:        FieldBudgetLevel,
		question:     text{Arabic: "ما الذي يصفك بشكل أفضل؟", English: "What describes you best?"},
		illustration: "sparkles",
		options: []optionDef{
			{"value", text{Arabic: "أفضل قيمة وإنفاق ذكي", English: "Best value, smart spending"}, "", "from-green-500 to-emerald-500"},
			{"balanced", text{Arabic: "راحة متوازنة والسعر", English: "Balanced comfort and price"}, "", "from-blue-500 to-cyan-500"},
			{"premium", text{Arabic: "تجربة فاخرة", English: "A premium experience"}, "", "from-amber-500 to-orange-500"},
		},
	},
	{
		field:        FieldTravelWith,
		question:     text{Arabic: "مع من تسافر عادةً؟", English: "Who do you usually travel with?"},
		illustration: "users",
		options: []optionDef{
			{"solo", text{Arabic: "بمفردي", English: "Solo"}, "user", "from-slate-500 to-gray-500"},
			{"partner", text{Arabic: "شريك", English: "Partner"}, "heart", "from-pink-500 to-rose-500"},
			{"friends", text{Arabic: "أصدقاء", English: "Friends"}, "users", "from-orange-500 to-amber-500"},
			{"family", text{Arabic: "عائلة", English: "Family"}, "baby", "from-blue-500 to-cyan-500"},
		},
	},
	{
		field:        FieldDaysRange,
		question:     text{Arabic: "كم يومًا تخطط للسفر؟", English: "How long is your trip?"},
		illustration: "calendar",
		options: []optionDef{
			{"3-5", text{Arabic: "من 3 إلى 5 أيام", English: "3 to 5 days"}, "sun", "from-sky-500 to-blue-500"},
			{"6-9", text{Arabic: "من 6 إلى 9 أيام", English: "6 to 9 days"}, "map-pin", "from-blue-500 to-indigo-500"},
			{"10-14", text{Arabic: "من 10 إلى 14 يومًا", English: "10 to 14 days"}, "plane", "from-indigo-500 to-violet-500"},
		},
	},
	{
		field:        FieldInterests,
		question:     text{Arabic: "ما الأكثر أهمية بالنسبة لك؟", English: "What matters most to you?"},
		illustration: "camera",
		multiSelect:  true,
		options: []optionDef{
			{"photography", text{Arabic: "التصوير الفوتوغرافي", English: "Photography"}, "camera", "from-blue-500 to-cyan-500"},
			{"food", text{Arabic: "الطعام", English: "Food"}, "utensils", "from-orange-500 to-red-500"},
			{"history", text{Arabic: "التاريخ", English: "History"}, "landmark", "from-amber-500 to-yellow-500"},
			{"nature", text{Arabic: "الطبيعة", English: "Nature"}, "tree-pine", "from-green-500 to-emerald-500"},
			{"shopping", text{Arabic: "التسوق", English: "Shopping"}, "shopping-bag", "from-pink-500 to-rose-500"},
		},
	},
}

// Steps returns the quiz definition rendered in the given locale.
func Steps(loc Locale) []Step {
	steps := make([]Step, 0, len(stepDefs))
	for _, d := range stepDefs {
		s := Step{
			Field:        d.field,
			Question:     d.question.in(loc),
			Illustration: d.illustration,
			MultiSelect:  d.multiSelect,
			Options:      make([]Option, 0, len(d.options)),
		}
		for _, o := range d.options {
			s.Options = append(s.Options, Option{
				Value:    o.value,
				Label:    o.label.in(loc),
				Icon:     o.icon,
				Gradient: o.gradient,
			})
		}
		steps = append(steps, s)
	}
	return steps
}

func StepCount() int {
	return len(stepDefs)
}

func (t text) in(loc Locale) string {
	if s, ok := t[loc]; ok {
		return s
	}
	return t[DefaultLocale]
}
