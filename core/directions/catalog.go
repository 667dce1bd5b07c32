// Package directions - the tutoring direction cards and their selection state.
package directions

import (
	"fmt"

	"github.com/MaRkS1234567/MySite-web/core/locale"
)

// ID identifies one of the four fixed directions.
type ID string

const (
	OGE         ID = "oge"
	EGE         ID = "ege"
	Programming ID = "programming"
	Math        ID = "math"
)

// IDs lists the directions in display order.
var IDs = []ID{OGE, EGE, Programming, Math}

// Valid reports whether the value belongs to the closed set.
func (id ID) Valid() bool {
	return id == OGE || id == EGE || id == Programming || id == Math
}

// Parse parses a wire value into a direction ID.
func Parse(s string) (ID, error) {
	id := ID(s)
	if !id.Valid() {
		return "", fmt.Errorf("invalid direction: %q", s)
	}
	return id, nil
}

// Direction is one subject-area card.
type Direction struct {
	ID       ID           `json:"id"`
	Title    locale.Text  `json:"title"`
	Promise  locale.Text  `json:"promise"`
	Audience locale.Text  `json:"audience"`
	Bullets  locale.Lines `json:"bullets"`
	Tags     locale.Lines `json:"tags"`
	Goal     locale.Text  `json:"goal"`
}

// Catalog is the fixed set of direction cards, in display order.
var Catalog = []Direction{
	{
		ID:    OGE,
		Title: locale.Text{RU: "Подготовка к ОГЭ", EN: "OGE Preparation"},
		Promise: locale.Text{
			RU: "Уверенная сдача экзамена с высоким баллом",
			EN: "Confident exam pass with a high score",
		},
		Audience: locale.Text{RU: "8–9 класс", EN: "Grades 8–9"},
		Bullets: locale.Lines{
			RU: []string{
				"Разбор формата и структуры экзамена",
				"Закрытие пробелов в базовых темах",
				"Решение типовых заданий по каждому блоку",
				"Пробные экзамены с разбором ошибок",
			},
			EN: []string{
				"Exam format and structure breakdown",
				"Filling gaps in fundamental topics",
				"Solving typical tasks for each section",
				"Mock exams with detailed error analysis",
			},
		},
		Tags: locale.Lines{
			RU: []string{"Онлайн", "ДЗ + обратная связь", "Еженедельные тесты", "Личный план"},
			EN: []string{"Online", "Homework + feedback", "Weekly tests", "Personal plan"},
		},
		Goal: locale.Text{RU: "Подготовка к ОГЭ", EN: "OGE exam preparation"},
	},
	{
		ID:    EGE,
		Title: locale.Text{RU: "Подготовка к ЕГЭ", EN: "EGE Preparation"},
		Promise: locale.Text{
			RU: "Стратегия подготовки и максимальный результат",
			EN: "Preparation strategy for the best possible result",
		},
		Audience: locale.Text{RU: "10–11 класс", EN: "Grades 10–11"},
		Bullets: locale.Lines{
			RU: []string{
				"Стратегия набора баллов и распределение времени",
				"Углублённый разбор сложных тем",
				"Решение заданий второй части с развёрнутым ответом",
				"Регулярные пробники в формате ЕГЭ",
				"Работа над типичными ошибками",
			},
			EN: []string{
				"Score strategy and time management",
				"Deep dive into advanced topics",
				"Part 2 tasks with detailed solutions",
				"Regular mock exams in EGE format",
				"Working through common mistakes",
			},
		},
		Tags: locale.Lines{
			RU: []string{"Онлайн", "ДЗ + обратная связь", "Пробники", "Личный план"},
			EN: []string{"Online", "Homework + feedback", "Mock exams", "Personal plan"},
		},
		Goal: locale.Text{RU: "Подготовка к ЕГЭ", EN: "EGE exam preparation"},
	},
	{
		ID:    Programming,
		Title: locale.Text{RU: "Программирование", EN: "Programming"},
		Promise: locale.Text{
			RU: "От нуля до уверенного написания собственных проектов",
			EN: "From zero to confidently building your own projects",
		},
		Audience: locale.Text{RU: "Начинающие и продолжающие", EN: "Beginners to intermediate"},
		Bullets: locale.Lines{
			RU: []string{
				"Основы: переменные, циклы, функции, структуры данных",
				"Практика на реальных задачах и мини-проектах",
				"Решение алгоритмических задач",
				"Разбор ошибок и code review",
			},
			EN: []string{
				"Fundamentals: variables, loops, functions, data structures",
				"Practice with real tasks and mini-projects",
				"Algorithm problem solving",
				"Error analysis and code review",
			},
		},
		Tags: locale.Lines{
			RU: []string{"Онлайн", "Проекты", "Code review", "Личный темп"},
			EN: []string{"Online", "Projects", "Code review", "Own pace"},
		},
		Goal: locale.Text{RU: "Изучение программирования", EN: "Learning programming"},
	},
	{
		ID:    Math,
		Title: locale.Text{RU: "Математика", EN: "Mathematics"},
		Promise: locale.Text{
			RU: "Крепкая база и уверенность в решении задач",
			EN: "Strong foundation and confidence in problem solving",
		},
		Audience: locale.Text{
			RU: "Школьная математика, укрепление базы",
			EN: "School math, strengthening the base",
		},
		Bullets: locale.Lines{
			RU: []string{
				"Алгебра и геометрия по школьной программе",
				"Разбор типовых задач и закрепление формул",
				"Устранение пробелов в понимании",
				"Развитие математического мышления",
			},
			EN: []string{
				"Algebra and geometry (school curriculum)",
				"Typical problem solving and formula practice",
				"Filling comprehension gaps",
				"Developing mathematical thinking",
			},
		},
		Tags: locale.Lines{
			RU: []string{"Онлайн", "ДЗ + обратная связь", "Личный план", "Гибкий график"},
			EN: []string{"Online", "Homework + feedback", "Personal plan", "Flexible schedule"},
		},
		Goal: locale.Text{RU: "Укрепление базы по математике", EN: "Strengthening math foundation"},
	},
}

// Lookup returns the card for an ID.
func Lookup(id ID) (Direction, bool) {
	for _, d := range Catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Direction{}, false
}
