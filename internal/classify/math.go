package classify

// mathRules classifies mathematics questions. Question banks mix Russian,
// Kazakh and English phrasing, so every rule carries keywords in all three.
var mathRules = []Rule{
	{
		Applies:    keywordAny("квадратн", "дискриминант", "quadratic", "квадрат теңдеу"),
		Domain:     "algebra",
		Topic:      "Quadratic equations",
		Tags:       []string{"algebra", "equations"},
		Difficulty: 3,
		Confidence: 0.9,
	},
	{
		Applies:    keywordAny("логарифм", "logarithm", "lg(", "ln("),
		Domain:     "algebra",
		Topic:      "Logarithms",
		Tags:       []string{"algebra"},
		Difficulty: 4,
		Confidence: 0.9,
	},
	{
		Applies:    keywordAny("тригонометр", "trigonometr", "sin", "cos", "tg(", "tan("),
		Domain:     "algebra",
		Topic:      "Trigonometry",
		Tags:       []string{"algebra", "functions"},
		Difficulty: 4,
		Confidence: 0.85,
	},
	{
		Applies:    keywordAny("производн", "интеграл", "туынды", "derivative", "integral"),
		Domain:     "calculus",
		Topic:      "Derivatives and integrals",
		Tags:       []string{"calculus"},
		Difficulty: 5,
		Confidence: 0.9,
	},
	{
		Applies:    keywordAny("прогресси", "progression", "арифметикалық", "геометрическ прогресс"),
		Domain:     "algebra",
		Topic:      "Progressions",
		Tags:       []string{"algebra", "sequences"},
		Difficulty: 3,
		Confidence: 0.85,
	},
	{
		Applies:    keywordAny("дроб", "бөлшек", "fraction"),
		Domain:     "arithmetic",
		Topic:      "Fractions",
		Tags:       []string{"arithmetic"},
		Difficulty: 2,
		Confidence: 0.85,
	},
	{
		Applies:    keywordAny("десятичн", "ондық", "decimal"),
		Domain:     "arithmetic",
		Topic:      "Decimals",
		Tags:       []string{"arithmetic"},
		Difficulty: 2,
		Confidence: 0.85,
	},
	{
		Applies:    keywordAny("процент", "пайыз", "percent"),
		Domain:     "arithmetic",
		Topic:      "Percentages",
		Tags:       []string{"arithmetic", "applied"},
		Difficulty: 2,
		Confidence: 0.85,
	},
	{
		Applies:    keywordAny("вероятн", "ықтималдық", "probability"),
		Domain:     "statistics",
		Topic:      "Probability",
		Tags:       []string{"statistics"},
		Difficulty: 4,
		Confidence: 0.85,
	},
	{
		Applies:    keywordAny("неравенств", "теңсіздік", "inequalit"),
		Domain:     "algebra",
		Topic:      "Inequalities",
		Tags:       []string{"algebra"},
		Difficulty: 3,
		Confidence: 0.8,
	},
	// Generic "equation" comes after every specific equation kind.
	{
		Applies:    keywordAny("уравнен", "теңдеу", "equation"),
		Domain:     "algebra",
		Topic:      "Linear equations",
		Tags:       []string{"algebra", "equations"},
		Difficulty: 3,
		Confidence: 0.75,
	},
	{
		Applies: keywordAny(
			"треугольник", "окружность", "площадь", "периметр",
			"үшбұрыш", "шеңбер", "аудан", "triangle", "circle", "area",
		),
		Domain:     "geometry",
		Topic:      "Geometry",
		Tags:       []string{"geometry"},
		Difficulty: 3,
		Confidence: 0.8,
	},
}

const mathFallbackTopic = "General problem solving"
