package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

// AdminKeyHeader заголовок с ключом доступа к административным эндпоинтам
const AdminKeyHeader = "X-Admin-Key"

// AdminAuth проверяет ключ административного доступа
// Token-эндпоинты и листинг сотрудников не защищаются этим middleware
func AdminAuth(adminKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminKeyHeader)

			// Сравнение за постоянное время
			if adminKey == "" || subtle.ConstantTimeCompare([]byte(got), []byte(adminKey)) != 1 {
				handlers.RespondUnauthorized(w, handlers.CodeUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
