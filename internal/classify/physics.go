package classify

// physicsRules classifies physics questions.
var physicsRules = []Rule{
	{
		Applies:    keywordAny("ток", "напряжен", "сопротивлен", "кернеу", "кедергі", " ом", "voltage", "current", "resist"),
		Domain:     "electricity",
		Topic:      "Electricity",
		Tags:       []string{"electricity"},
		Difficulty: 3,
		Confidence: 0.85,
	},
	{
		Applies:    keywordAny("линз", "преломлен", "жарық", "сыну", "lens", "refract", "optic"),
		Domain:     "optics",
		Topic:      "Optics",
		Tags:       []string{"optics"},
		Difficulty: 4,
		Confidence: 0.85,
	},
	{
		Applies:    keywordAny("сил", "ньютон", "күш", "трени", "force", "newton", "friction"),
		Domain:     "mechanics",
		Topic:      "Dynamics",
		Tags:       []string{"mechanics"},
		Difficulty: 3,
		Confidence: 0.8,
	},
	{
		Applies:    keywordAny("ускорен", "үдеу", "скорост", "жылдамдық", "accelerat", "velocity"),
		Domain:     "mechanics",
		Topic:      "Kinematics",
		Tags:       []string{"mechanics"},
		Difficulty: 3,
		Confidence: 0.8,
	},
	{
		Applies:    keywordAny("энерги", "работ", "мощност", "энергия", "қуат", "energy", "power"),
		Domain:     "mechanics",
		Topic:      "Work and energy",
		Tags:       []string{"mechanics"},
		Difficulty: 3,
		Confidence: 0.8,
	},
}
