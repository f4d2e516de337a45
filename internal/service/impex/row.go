package impex

import (
	"fmt"
	"strings"

	"github.com/opsacademy/training-backend/internal/domain"
)

// Row is one flat CSV record keyed by column name. The column set is a
// stable external contract shared by import and export.
type Row map[string]string

// Fixed section columns.
const (
	ColTitle     = "title"
	ColObjective = "objective"
	ColProcess   = "process_explained"
	ColTask      = "task_breakdown"
	ColSelfCheck = "self_check"
)

const (
	maxQuizSlots   = 4
	optionsPerSlot = 4
)

// Columns returns the canonical column order for CSV headers: the five
// section columns followed by the four quiz slots, each slot contributing
// question, four options and the correct answer.
func Columns() []string {
	cols := []string{ColTitle, ColObjective, ColProcess, ColTask, ColSelfCheck}
	for slot := 1; slot <= maxQuizSlots; slot++ {
		cols = append(cols, questionCol(slot))
		for opt := 1; opt <= optionsPerSlot; opt++ {
			cols = append(cols, optionCol(slot, opt))
		}
		cols = append(cols, correctCol(slot))
	}
	return cols
}

func questionCol(slot int) string { return fmt.Sprintf("q%d_question", slot) }

func optionCol(slot, opt int) string { return fmt.Sprintf("q%d_option%d", slot, opt) }

func correctCol(slot int) string { return fmt.Sprintf("q%d_correct", slot) }

// sections extracts the four section texts from the row.
func (r Row) sections() domain.Sections {
	return domain.Sections{
		Objective: strings.TrimSpace(r[ColObjective]),
		Process:   strings.TrimSpace(r[ColProcess]),
		Task:      strings.TrimSpace(r[ColTask]),
		SelfCheck: strings.TrimSpace(r[ColSelfCheck]),
	}
}

// quiz reconstructs quiz items from the row's slots. A slot is kept only
// when its question, all four options and the correct answer are present;
// incomplete slots are dropped without failing the row.
func (r Row) quiz() []domain.QuizItem {
	items := []domain.QuizItem{}

	for slot := 1; slot <= maxQuizSlots; slot++ {
		question := strings.TrimSpace(r[questionCol(slot)])
		correct := strings.TrimSpace(r[correctCol(slot)])

		options := make([]string, 0, optionsPerSlot)
		for opt := 1; opt <= optionsPerSlot; opt++ {
			options = append(options, strings.TrimSpace(r[optionCol(slot, opt)]))
		}

		complete := question != "" && correct != ""
		for _, option := range options {
			if option == "" {
				complete = false
			}
		}
		if !complete {
			continue
		}

		items = append(items, domain.QuizItem{
			Question:      question,
			Options:       options,
			CorrectAnswer: correct,
		})
	}

	return items
}

// rowFromTopic is the inverse projection used by export: section texts are
// recovered from the stored content and quiz items fill slots in order.
// Quiz items beyond the four slots are not representable and are omitted.
func rowFromTopic(topic domain.Topic) Row {
	sections := domain.ParseContent(topic.Content)

	row := Row{
		ColTitle:     topic.Title,
		ColObjective: sections.Objective,
		ColProcess:   sections.Process,
		ColTask:      sections.Task,
		ColSelfCheck: sections.SelfCheck,
	}

	for slot := 1; slot <= maxQuizSlots; slot++ {
		row[questionCol(slot)] = ""
		for opt := 1; opt <= optionsPerSlot; opt++ {
			row[optionCol(slot, opt)] = ""
		}
		row[correctCol(slot)] = ""
	}

	for i, item := range topic.Quiz {
		if i >= maxQuizSlots {
			break
		}
		slot := i + 1
		row[questionCol(slot)] = item.Question
		for opt, option := range item.Options {
			if opt >= optionsPerSlot {
				break
			}
			row[optionCol(slot, opt+1)] = option
		}
		row[correctCol(slot)] = item.CorrectAnswer
	}

	return row
}
