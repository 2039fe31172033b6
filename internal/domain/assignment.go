package domain

import "time"

// Assignment связь мастер-специализация.
// Для пары (stylist_id, specialty_id) существует не больше одной активной записи.
// Записи создаются и удаляются только синхронизатором назначений и никогда
// не изменяются на месте: снятие специализации удаляет строку целиком.
type Assignment struct {
	ID          int64
	StylistID   int64
	SpecialtyID int64
	AssignedAt  time.Time
	Active      bool
}

// StylistSpecialty строка обогащенного списка специализаций:
// каждая активная специализация с флагом, закреплена ли она за данным мастером
type StylistSpecialty struct {
	Specialty
	IsAssigned bool
}

// AssignmentDiff минимальный набор изменений, приводящий текущий набор
// назначений мастера к желаемому
type AssignmentDiff struct {
	ToAdd    []int64       // specialty_id, которые нужно добавить
	ToRemove []*Assignment // записи, которые нужно удалить
}

// IsEmpty возвращает true, если изменений не требуется
func (d *AssignmentDiff) IsEmpty() bool {
	return len(d.ToAdd) == 0 && len(d.ToRemove) == 0
}

// ComputeAssignmentDiff вычисляет минимальный diff между текущими назначениями
// и желаемым набором специализаций. Записи, присутствующие в обоих наборах,
// не попадают ни в ToAdd, ни в ToRemove: их строки (и assigned_at) сохраняются.
func ComputeAssignmentDiff(current []*Assignment, desired []int64) *AssignmentDiff {
	desiredSet := make(map[int64]struct{}, len(desired))
	for _, id := range desired {
		desiredSet[id] = struct{}{}
	}

	currentSet := make(map[int64]struct{}, len(current))
	diff := &AssignmentDiff{}

	for _, a := range current {
		currentSet[a.SpecialtyID] = struct{}{}
		if _, ok := desiredSet[a.SpecialtyID]; !ok {
			diff.ToRemove = append(diff.ToRemove, a)
		}
	}

	for _, id := range desired {
		if _, ok := currentSet[id]; !ok {
			diff.ToAdd = append(diff.ToAdd, id)
		}
	}

	return diff
}
