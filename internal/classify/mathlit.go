package classify

// mathLitRules classifies math-literacy questions: applied arithmetic
// dressed in everyday contexts. Context words are checked before operation
// words so that "кредит под 12 процентов" lands in financial literacy, not
// generic percentages.
var mathLitRules = []Rule{
	{
		Applies:    keywordAny("кредит", "скидк", "налог", "бюджет", "жеңілдік", "салық", "валют", "discount", "loan"),
		Domain:     "applied",
		Topic:      "Financial literacy",
		Tags:       []string{"applied", "money"},
		Difficulty: 3,
		Confidence: 0.85,
	},
	{
		Applies:    keywordAny("диаграмм", "график", "таблиц", "кесте", "chart", "table"),
		Domain:     "applied",
		Topic:      "Data interpretation",
		Tags:       []string{"applied", "data"},
		Difficulty: 3,
		Confidence: 0.85,
	},
	{
		Applies:    keywordAny("скорост", "жылдамдық", "расстоян", "қашықтық", "навстречу", "speed", "distance"),
		Domain:     "applied",
		Topic:      "Motion problems",
		Tags:       []string{"applied"},
		Difficulty: 3,
		Confidence: 0.8,
	},
	{
		Applies:    keywordAny("пропорц", "масштаб", "соотношен", "қатынас", "proportion", "ratio", "scale"),
		Domain:     "applied",
		Topic:      "Proportional reasoning",
		Tags:       []string{"applied"},
		Difficulty: 2,
		Confidence: 0.8,
	},
	{
		Applies:    keywordAny("процент", "пайыз", "percent"),
		Domain:     "applied",
		Topic:      "Percentages",
		Tags:       []string{"applied"},
		Difficulty: 2,
		Confidence: 0.8,
	},
}
