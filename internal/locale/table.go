package locale

// TaskStrings holds the templates for one homework task kind.
// Each template takes the topic name as its single %s argument.
type TaskStrings struct {
	Title       string
	Description string
	Objective   string
}

// Table is the full string table for one language. Every piece of generated
// text comes from here so that a single analysis never mixes languages.
type Table struct {
	// Homework task templates.
	Conceptual TaskStrings
	Guided     TaskStrings
	Applied    TaskStrings
	Review     TaskStrings

	// Video recommendations.
	VideoTitle      string   // takes topic
	VideoQueryTerms []string // appended to the topic in search queries

	// Teacher notes clauses.
	OverallResult  string // takes percentage
	WeakList       string // takes joined topic names
	BorderlineList string
	StrongList     string
	GradeNote      string // takes grade level

	// Student message.
	StudentWeak    string // takes joined weak topic names
	StudentPraise  string
	FriendlyPrefix string

	// Rule-based diagnostic report.
	DiagHeaderFocus  string
	DiagHeaderStrong string
	TierFull         string
	TierBrief        string
	TierMaintain     string
	RationaleWeak    string
	RationaleBorder  string
	RationaleStrong  string
	ActionsWeak      [3]string
	ActionsBorder    [3]string
	ActionsStrong    [3]string
	BudgetWeak       string
	BudgetOther      string
	EstimateWeak     string
	EstimateBorder   string
	EstimateStrong   string
	WeeklyPlan       string
}

// Strings returns the string table for lang. Unknown values get English.
func Strings(lang Lang) *Table {
	switch lang {
	case LangRU:
		return &tableRU
	case LangKZ:
		return &tableKZ
	default:
		return &tableEN
	}
}

var tableEN = Table{
	Conceptual: TaskStrings{
		Title:       "Concept review: %s",
		Description: "Re-read the key definitions and worked examples for %s, then explain each step in your own words.",
		Objective:   "Understand the core ideas of %s",
	},
	Guided: TaskStrings{
		Title:       "Guided practice: %s",
		Description: "Solve the step-by-step practice set for %s, checking each answer before moving on.",
		Objective:   "Apply standard methods for %s with support",
	},
	Applied: TaskStrings{
		Title:       "Applied problems: %s",
		Description: "Work through exam-style problems on %s without hints and review every mistake.",
		Objective:   "Solve exam-level problems on %s independently",
	},
	Review: TaskStrings{
		Title:       "Quick review: %s",
		Description: "Skim the summary notes for %s and solve two or three check exercises.",
		Objective:   "Keep %s fresh",
	},

	VideoTitle:      "%s — short video explainer",
	VideoQueryTerms: []string{"explained", "worked examples"},

	OverallResult:  "Overall result: %.1f%%",
	WeakList:       "weak topics: %s",
	BorderlineList: "needs reinforcement: %s",
	StrongList:     "strong topics: %s",
	GradeNote:      "grade %d",

	StudentWeak:    "Pay attention to these topics: %s. Complete the tasks and watch the short videos!",
	StudentPraise:  "Great work! Keep it up!",
	FriendlyPrefix: "Hi! ",

	DiagHeaderFocus:  "Topics needing attention:",
	DiagHeaderStrong: "Strong topics:",
	TierFull:         "needs full review",
	TierBrief:        "needs brief review",
	TierMaintain:     "maintain",
	RationaleWeak:    "Results show systematic gaps in this topic.",
	RationaleBorder:  "The basics are in place, but accuracy is unstable.",
	RationaleStrong:  "The topic is answered consistently and correctly.",
	ActionsWeak: [3]string{
		"Re-study the theory with worked examples",
		"Solve 10-15 basic exercises",
		"Take a short quiz on the topic",
	},
	ActionsBorder: [3]string{
		"Go over your typical mistakes",
		"Solve 5-7 mixed exercises",
		"Re-check the hardest examples",
	},
	ActionsStrong: [3]string{
		"Solve 2-3 challenge problems",
		"Explain the topic to someone else",
		"Keep the topic in mixed practice",
	},
	BudgetWeak:     "estimated time: 3-4 hours",
	BudgetOther:    "estimated time: 1-2 hours",
	EstimateWeak:   "≈50% (estimate)",
	EstimateBorder: "≈70%",
	EstimateStrong: "≈90%",
	WeeklyPlan:     "Spread the work across the week: short daily sessions beat one long sitting.",
}

var tableRU = Table{
	Conceptual: TaskStrings{
		Title:       "Разбор понятий: %s",
		Description: "Перечитай основные определения и разобранные примеры по теме «%s», затем объясни каждый шаг своими словами.",
		Objective:   "Понять ключевые идеи темы «%s»",
	},
	Guided: TaskStrings{
		Title:       "Практика с подсказками: %s",
		Description: "Реши пошаговый набор заданий по теме «%s», проверяя каждый ответ перед переходом к следующему.",
		Objective:   "Применять стандартные методы по теме «%s» с опорой",
	},
	Applied: TaskStrings{
		Title:       "Прикладные задачи: %s",
		Description: "Прорешай задачи экзаменационного уровня по теме «%s» без подсказок и разбери каждую ошибку.",
		Objective:   "Самостоятельно решать экзаменационные задачи по теме «%s»",
	},
	Review: TaskStrings{
		Title:       "Быстрое повторение: %s",
		Description: "Просмотри конспект по теме «%s» и реши два-три проверочных задания.",
		Objective:   "Поддерживать тему «%s» в активной форме",
	},

	VideoTitle:      "%s — короткое видеообъяснение",
	VideoQueryTerms: []string{"объяснение", "разбор задач"},

	OverallResult:  "Общий результат: %.1f%%",
	WeakList:       "слабые темы: %s",
	BorderlineList: "требуют закрепления: %s",
	StrongList:     "сильные темы: %s",
	GradeNote:      "%d класс",

	StudentWeak:    "Обрати внимание на темы: %s. Выполни задания и посмотри короткие видео!",
	StudentPraise:  "Отличная работа! Так держать!",
	FriendlyPrefix: "Привет! ",

	DiagHeaderFocus:  "Темы, требующие внимания:",
	DiagHeaderStrong: "Сильные темы:",
	TierFull:         "нужен полный разбор",
	TierBrief:        "нужно краткое повторение",
	TierMaintain:     "поддерживать уровень",
	RationaleWeak:    "Результаты показывают системные пробелы по теме.",
	RationaleBorder:  "База есть, но точность пока нестабильна.",
	RationaleStrong:  "Тема решается стабильно и правильно.",
	ActionsWeak: [3]string{
		"Повторить теорию с разобранными примерами",
		"Решить 10-15 базовых заданий",
		"Пройти короткий тест по теме",
	},
	ActionsBorder: [3]string{
		"Разобрать типичные ошибки",
		"Решить 5-7 смешанных заданий",
		"Перепроверить самые сложные примеры",
	},
	ActionsStrong: [3]string{
		"Решить 2-3 задачи повышенной сложности",
		"Объяснить тему кому-нибудь другому",
		"Оставить тему в смешанной практике",
	},
	BudgetWeak:     "ориентировочное время: 3-4 часа",
	BudgetOther:    "ориентировочное время: 1-2 часа",
	EstimateWeak:   "≈50% (оценка)",
	EstimateBorder: "≈70%",
	EstimateStrong: "≈90%",
	WeeklyPlan:     "Распредели работу по неделе: короткие занятия каждый день эффективнее одного длинного.",
}

var tableKZ = Table{
	Conceptual: TaskStrings{
		Title:       "Ұғымдарды талдау: %s",
		Description: "«%s» тақырыбы бойынша негізгі анықтамалар мен талданған мысалдарды қайта оқып, әр қадамды өз сөзіңмен түсіндір.",
		Objective:   "«%s» тақырыбының негізгі идеяларын түсіну",
	},
	Guided: TaskStrings{
		Title:       "Бағытталған жаттығу: %s",
		Description: "«%s» тақырыбы бойынша қадамдық тапсырмалар жинағын шешіп, әр жауапты келесіге өтпес бұрын тексер.",
		Objective:   "«%s» тақырыбы бойынша стандартты әдістерді қолдаумен қолдану",
	},
	Applied: TaskStrings{
		Title:       "Қолданбалы есептер: %s",
		Description: "«%s» тақырыбы бойынша емтихан деңгейіндегі есептерді көмексіз шығарып, әр қатені талда.",
		Objective:   "«%s» тақырыбы бойынша емтихан есептерін өз бетінше шешу",
	},
	Review: TaskStrings{
		Title:       "Жылдам қайталау: %s",
		Description: "«%s» тақырыбы бойынша конспектіні қарап шығып, екі-үш тексеру тапсырмасын орында.",
		Objective:   "«%s» тақырыбын белсенді түрде ұстап тұру",
	},

	VideoTitle:      "%s — қысқа бейнетүсіндірме",
	VideoQueryTerms: []string{"түсіндірме", "есептерді талдау"},

	OverallResult:  "Жалпы нәтиже: %.1f%%",
	WeakList:       "әлсіз тақырыптар: %s",
	BorderlineList: "бекітуді қажет етеді: %s",
	StrongList:     "мықты тақырыптар: %s",
	GradeNote:      "%d сынып",

	StudentWeak:    "Мына тақырыптарға назар аудар: %s. Тапсырмаларды орындап, қысқа бейнелерді қара!",
	StudentPraise:  "Тамаша жұмыс! Осы қарқынды жалғастыр!",
	FriendlyPrefix: "Сәлем! ",

	DiagHeaderFocus:  "Назар аударуды қажет ететін тақырыптар:",
	DiagHeaderStrong: "Мықты тақырыптар:",
	TierFull:         "толық қайталау қажет",
	TierBrief:        "қысқаша қайталау қажет",
	TierMaintain:     "деңгейді ұстап тұру",
	RationaleWeak:    "Нәтижелер тақырып бойынша жүйелі олқылықтарды көрсетеді.",
	RationaleBorder:  "Негіз бар, бірақ дәлдік әзірге тұрақсыз.",
	RationaleStrong:  "Тақырып тұрақты әрі дұрыс шешіледі.",
	ActionsWeak: [3]string{
		"Теорияны талданған мысалдармен қайталау",
		"10-15 базалық тапсырма шешу",
		"Тақырып бойынша қысқа тест тапсыру",
	},
	ActionsBorder: [3]string{
		"Жиі кездесетін қателерді талдау",
		"5-7 аралас тапсырма шешу",
		"Ең күрделі мысалдарды қайта тексеру",
	},
	ActionsStrong: [3]string{
		"Күрделілігі жоғары 2-3 есеп шешу",
		"Тақырыпты басқа біреуге түсіндіру",
		"Тақырыпты аралас практикада қалдыру",
	},
	BudgetWeak:     "шамамен уақыт: 3-4 сағат",
	BudgetOther:    "шамамен уақыт: 1-2 сағат",
	EstimateWeak:   "≈50% (болжам)",
	EstimateBorder: "≈70%",
	EstimateStrong: "≈90%",
	WeeklyPlan:     "Жұмысты аптаға бөліп жоспарла: күнделікті қысқа сабақтар бір ұзақ отырыстан тиімдірек.",
}
