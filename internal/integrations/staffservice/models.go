package staffservice

// Stylist модель мастера из StaffService.
// Учетные записи персонала живут в StaffService; этот сервис хранит только
// stylist_id и перед записью проверяет, что мастер существует.
type Stylist struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"` // coiffeur | assistant | admin
	Active   bool   `json:"active"`
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
