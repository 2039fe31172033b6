package recount_specialties

// Correction одна исправленная специализация
type Correction struct {
	SpecialtyID int64 `json:"specialtyId"`
	OldCount    int   `json:"oldCount"`
	NewCount    int   `json:"newCount"`
}

// Response результат пересчета счетчиков
type Response struct {
	Checked     int          `json:"checked"`     // сколько специализаций проверено
	Corrections []Correction `json:"corrections"` // расхождения, которые были исправлены
}
