package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-StylistService/internal/api/handlers"
)

type userIDKey struct{}

// Auth извлекает идентификатор пользователя из заголовка X-User-ID и кладет
// его в контекст запроса. Аутентификацию выполняет вышестоящий gateway,
// сервис доверяет заголовку. Запросы без валидного заголовка отклоняются.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает идентификатор пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
