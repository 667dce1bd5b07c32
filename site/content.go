package site

// Static page copy. Everything user-visible on the server-rendered pages
// lives here so templates stay free of literals.

// HomeStat is one headline metric linking to its section.
type HomeStat struct {
	Value string
	Label string
	Href  string
}

// HomeStats are the three headline metrics on the landing page.
var HomeStats = []HomeStat{
	{Value: "4 года", Label: "в разработке", Href: "/cv"},
	{Value: "~20", Label: "проектов", Href: "/dev"},
	{Value: "~50", Label: "учеников", Href: "/tutor"},
}

// HomeTags is the skill ticker under the hero.
var HomeTags = []string{
	"React", "TypeScript", "Node.js", "Python", "Go",
	"PostgreSQL", "Docker", "ЕГЭ", "ОГЭ", "Олимпиады",
}

// DevService is one development offer card.
type DevService struct {
	Title       string
	Description string
	Stack       []string
}

// DevServices are the four offer cards on the development page.
var DevServices = []DevService{
	{
		Title:       "Веб-приложение",
		Description: "Полноценное приложение с личным кабинетом, базой данных и API. От идеи до продакшена.",
		Stack:       []string{"React", "Node.js", "PostgreSQL"},
	},
	{
		Title:       "Лендинг и бизнес-сайт",
		Description: "Быстрый, адаптивный сайт с формами заявок и аналитикой. Запуск за 1–2 недели.",
		Stack:       []string{"React", "TypeScript", "Vite"},
	},
	{
		Title:       "Backend и API",
		Description: "Надёжный сервер, интеграции со сторонними сервисами, боты и автоматизация.",
		Stack:       []string{"Node.js", "Python", "Go"},
	},
	{
		Title:       "Code Review и консультация",
		Description: "Разбор вашего кода, помощь с архитектурой и план развития проекта.",
		Stack:       []string{"Аудит", "Рефакторинг", "Менторство"},
	},
}

// DevCase is one portfolio case card.
type DevCase struct {
	Title    string
	Subtitle string
	Metric   string
	Tags     []string
}

// DevCases are the portfolio entries on the development page.
var DevCases = []DevCase{
	{
		Title:    "TaskFlow",
		Subtitle: "Трекер задач для небольшой команды: канбан, дедлайны, уведомления.",
		Metric:   "2 недели от макета до продакшена",
		Tags:     []string{"React", "Node.js", "PostgreSQL"},
	},
	{
		Title:    "Прайс-бот",
		Subtitle: "Telegram-бот для расчёта стоимости заказа и приёма заявок.",
		Metric:   "−80% ручной обработки заявок",
		Tags:     []string{"Python", "Telegram API"},
	},
	{
		Title:    "Школа онлайн",
		Subtitle: "Лендинг с конфигуратором занятий и оплатой.",
		Metric:   "конверсия в заявку 11%",
		Tags:     []string{"TypeScript", "Vite"},
	},
}

// CVContact is one contact row on the resume page.
type CVContact struct {
	Label string
	Value string
	Href  string
}

// CVExperience is one work-history entry.
type CVExperience struct {
	Role    string
	Company string
	Period  string
	Points  []string
}

// CVEducation is one education entry.
type CVEducation struct {
	Place  string
	Detail string
	Period string
}

// CV holds the resume page content.
var CV = struct {
	Name       string
	Title      string
	Contacts   []CVContact
	Experience []CVExperience
	Education  []CVEducation
	HardSkills []string
	SoftSkills []string
}{
	Name:  "Марк Шарапов",
	Title: "Full-Stack Developer",
	Contacts: []CVContact{
		{Label: "Telegram", Value: "@marksharapov", Href: "https://t.me/marksharapov"},
		{Label: "Телефон", Value: "+7 916 817 76 33", Href: "tel:+79168177633"},
		{Label: "GitHub", Value: "github.com/MaRkS1234567", Href: "https://github.com/MaRkS1234567"},
		{Label: "Codewars", Value: "codewars.com", Href: "https://www.codewars.com"},
	},
	Experience: []CVExperience{
		{
			Role:    "Front-end разработчик",
			Company: "BI.ZONE",
			Period:  "2022 — 2024",
			Points: []string{
				"Разработка интерфейсов внутренних продуктов на React и TypeScript",
				"Интеграция с REST API, оптимизация загрузки и рендеринга",
			},
		},
		{
			Role:    "Front-end разработчик",
			Company: "Brunello Cucinelli",
			Period:  "2024 — 2025",
			Points: []string{
				"Поддержка и развитие e-commerce витрины",
				"Адаптивная вёрстка, работа с дизайн-системой",
			},
		},
		{
			Role:    "Full-Stack разработчик",
			Company: "Фриланс",
			Period:  "2023 — сейчас",
			Points: []string{
				"Проекты под ключ: лендинги, боты, веб-приложения",
				"Репетиторство по информатике и математике",
			},
		},
	},
	Education: []CVEducation{
		{Place: "Академическая гимназия", Detail: "Физико-математический профиль", Period: "до 2021"},
		{Place: "МГТУ им. Баумана", Detail: "Информатика и вычислительная техника", Period: "2021 — 2025"},
	},
	HardSkills: []string{
		"React", "TypeScript", "Node.js", "Python", "Go",
		"PostgreSQL", "Docker", "Git", "REST API",
	},
	SoftSkills: []string{
		"Объясняю сложное простыми словами",
		"Довожу проекты до результата",
		"Быстро осваиваю новые технологии",
	},
}
