package sync_specialties

// Request модель запроса на синхронизацию набора специализаций мастера.
// SpecialtyIDs - желаемый набор целиком: все, чего нет в наборе, будет снято,
// все, чего не хватает, будет добавлено.
type Request struct {
	StylistID    int64
	SpecialtyIDs []int64
}

// Response результат синхронизации
type Response struct {
	StylistID  int64   `json:"stylistId"`
	Assigned   []int64 `json:"assigned"`   // итоговый набор specialty_id
	AddedIDs   []int64 `json:"addedIds"`   // добавленные этим вызовом
	RemovedIDs []int64 `json:"removedIds"` // снятые этим вызовом
	KeptCount  int     `json:"keptCount"`  // нетронутые назначения
}
