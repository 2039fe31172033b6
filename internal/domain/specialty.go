package domain

import (
	"strings"
	"time"
)

// Specialty специализация (услуга-навык), которую можно закрепить за мастером.
// Поле AssignedStylistCount денормализовано: оно должно совпадать с числом
// активных записей в coiffeur_specialites, ссылающихся на эту специализацию.
// Меняется оно только вместе с самими записями назначений.
type Specialty struct {
	ID                   int64
	Name                 string
	Description          *string
	Active               bool
	AssignedStylistCount int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsDeleted возвращает true, если специализация мягко удалена
func (s *Specialty) IsDeleted() bool {
	return !s.Active
}

// NormalizeSpecialtyName приводит имя к канонической форме для сравнения.
// Уникальность имен среди активных специализаций регистронезависимая.
func NormalizeSpecialtyName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
