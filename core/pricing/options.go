// Package pricing - tutoring price rules and the lesson configurator.
// All option fields are closed enumerations: values are constructed only
// through the exported constants or the Parse helpers, so an out-of-range
// value reaching the calculator is a programming error.
package pricing

import (
	"fmt"

	"github.com/MaRkS1234567/MySite-web/core/locale"
)

// Format is the class size.
type Format string

const (
	FormatIndividual Format = "individual"
	FormatPair       Format = "pair"
	FormatMiniGroup  Format = "mini-group"
)

// Intensity is the qualitative load tier.
type Intensity string

const (
	IntensityLight     Intensity = "light"
	IntensityStandard  Intensity = "standard"
	IntensityIntensive Intensity = "intensive"
)

// Frequency is the number of lessons per week.
type Frequency string

const (
	FrequencyOnce   Frequency = "1x"
	FrequencyTwice  Frequency = "2x"
	FrequencyThrice Frequency = "3x"
)

// Goal is the preparation target.
type Goal string

const (
	GoalOGE         Goal = "oge"
	GoalEGE         Goal = "ege"
	GoalProgramming Goal = "programming"
	GoalMath        Goal = "math"
	GoalGrades      Goal = "grades"
)

// Duration is the lesson length in minutes.
type Duration int

const (
	Duration60 Duration = 60
	Duration90 Duration = 90
)

// Urgency tells whether the exam is close enough to need an accelerated plan.
type Urgency string

const (
	UrgencySoon  Urgency = "soon"
	UrgencyLater Urgency = "later"
)

// Selector option lists, in display order.
var (
	FormatOptions    = []Format{FormatIndividual, FormatPair, FormatMiniGroup}
	IntensityOptions = []Intensity{IntensityLight, IntensityStandard, IntensityIntensive}
	FrequencyOptions = []Frequency{FrequencyOnce, FrequencyTwice, FrequencyThrice}
	GoalOptions      = []Goal{GoalOGE, GoalEGE, GoalProgramming, GoalMath, GoalGrades}
	DurationOptions  = []Duration{Duration60, Duration90}
	UrgencyOptions   = []Urgency{UrgencySoon, UrgencyLater}
)

// Valid reports whether the value belongs to the closed set.
func (f Format) Valid() bool {
	return f == FormatIndividual || f == FormatPair || f == FormatMiniGroup
}

// Valid reports whether the value belongs to the closed set.
func (i Intensity) Valid() bool {
	return i == IntensityLight || i == IntensityStandard || i == IntensityIntensive
}

// Valid reports whether the value belongs to the closed set.
func (f Frequency) Valid() bool {
	return f == FrequencyOnce || f == FrequencyTwice || f == FrequencyThrice
}

// Valid reports whether the value belongs to the closed set.
func (g Goal) Valid() bool {
	switch g {
	case GoalOGE, GoalEGE, GoalProgramming, GoalMath, GoalGrades:
		return true
	}
	return false
}

// Valid reports whether the value belongs to the closed set.
func (d Duration) Valid() bool {
	return d == Duration60 || d == Duration90
}

// Valid reports whether the value belongs to the closed set.
func (u Urgency) Valid() bool {
	return u == UrgencySoon || u == UrgencyLater
}

// ParseFormat parses a wire value into a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !f.Valid() {
		return "", fmt.Errorf("invalid format: %q", s)
	}
	return f, nil
}

// ParseIntensity parses a wire value into an Intensity.
func ParseIntensity(s string) (Intensity, error) {
	i := Intensity(s)
	if !i.Valid() {
		return "", fmt.Errorf("invalid intensity: %q", s)
	}
	return i, nil
}

// ParseFrequency parses a wire value into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if !f.Valid() {
		return "", fmt.Errorf("invalid frequency: %q", s)
	}
	return f, nil
}

// ParseGoal parses a wire value into a Goal.
func ParseGoal(s string) (Goal, error) {
	g := Goal(s)
	if !g.Valid() {
		return "", fmt.Errorf("invalid goal: %q", s)
	}
	return g, nil
}

// ParseDuration parses a lesson length in minutes into a Duration.
func ParseDuration(minutes int) (Duration, error) {
	d := Duration(minutes)
	if !d.Valid() {
		return 0, fmt.Errorf("invalid duration: %d", minutes)
	}
	return d, nil
}

// ParseUrgency parses a wire value into an Urgency.
func ParseUrgency(s string) (Urgency, error) {
	u := Urgency(s)
	if !u.Valid() {
		return "", fmt.Errorf("invalid urgency: %q", s)
	}
	return u, nil
}

// Localized labels.

var formatLabels = map[Format]locale.Text{
	FormatIndividual: {RU: "Индивидуально", EN: "Individual"},
	FormatPair:       {RU: "В паре (2)", EN: "Pair (2)"},
	FormatMiniGroup:  {RU: "Мини-группа (3–5)", EN: "Mini-group (3–5)"},
}

var intensityLabels = map[Intensity]locale.Text{
	IntensityLight:     {RU: "Лёгкий", EN: "Light"},
	IntensityStandard:  {RU: "Стандарт", EN: "Standard"},
	IntensityIntensive: {RU: "Интенсив", EN: "Intensive"},
}

var frequencyLabels = map[Frequency]locale.Text{
	FrequencyOnce:   {RU: "1 раз/нед", EN: "1x/week"},
	FrequencyTwice:  {RU: "2 раза/нед", EN: "2x/week"},
	FrequencyThrice: {RU: "3 раза/нед", EN: "3x/week"},
}

var goalLabels = map[Goal]locale.Text{
	GoalOGE:         {RU: "ОГЭ", EN: "OGE"},
	GoalEGE:         {RU: "ЕГЭ", EN: "EGE"},
	GoalProgramming: {RU: "Программирование", EN: "Programming"},
	GoalMath:        {RU: "Математика", EN: "Math"},
	GoalGrades:      {RU: "Улучшить оценки", EN: "Improve grades"},
}

var durationLabels = map[Duration]locale.Text{
	Duration60: {RU: "60 мин", EN: "60 min"},
	Duration90: {RU: "90 мин", EN: "90 min"},
}

var urgencyLabels = map[Urgency]locale.Text{
	UrgencySoon:  {RU: "Экзамен скоро (≤ 2 мес)", EN: "Exam soon (≤ 2 months)"},
	UrgencyLater: {RU: "Позже", EN: "Later"},
}

// Label returns the localized display label.
func (f Format) Label(lang locale.Lang) string { return formatLabels[f].Get(lang) }

// Label returns the localized display label.
func (i Intensity) Label(lang locale.Lang) string { return intensityLabels[i].Get(lang) }

// Label returns the localized display label.
func (f Frequency) Label(lang locale.Lang) string { return frequencyLabels[f].Get(lang) }

// Label returns the localized display label.
func (g Goal) Label(lang locale.Lang) string { return goalLabels[g].Get(lang) }

// Label returns the localized display label.
func (d Duration) Label(lang locale.Lang) string { return durationLabels[d].Get(lang) }

// Label returns the localized display label.
func (u Urgency) Label(lang locale.Lang) string { return urgencyLabels[u].Get(lang) }

// includesByIntensity lists what each load tier includes.
var includesByIntensity = map[Intensity]locale.Lines{
	IntensityLight: {
		RU: []string{
			"Индивидуальный план обучения",
			"Домашние задания с проверкой",
			"Отслеживание прогресса",
		},
		EN: []string{
			"Individual learning plan",
			"Homework with verification",
			"Progress tracking",
		},
	},
	IntensityStandard: {
		RU: []string{
			"Индивидуальный план обучения",
			"Еженедельные практические сессии",
			"Регулярная обратная связь и разбор ошибок",
			"Отчёты о прогрессе",
		},
		EN: []string{
			"Individual learning plan",
			"Weekly practice sessions",
			"Regular feedback and corrections",
			"Progress reports",
		},
	},
	IntensityIntensive: {
		RU: []string{
			"Индивидуальный план обучения",
			"Максимум практики",
			"Пробные экзамены и тренировки",
			"Ускоренный график",
			"Поддержка между занятиями",
		},
		EN: []string{
			"Individual learning plan",
			"Maximum practice volume",
			"Mock exams and simulations",
			"Accelerated schedule",
			"Priority support between lessons",
		},
	},
}

// Includes returns the localized list of what the tier includes.
func (i Intensity) Includes(lang locale.Lang) []string {
	return includesByIntensity[i].Get(lang)
}
