package i18n

import "net/http"

// Middleware injects a localizer for the configured language into every
// request context. Stored severity labels follow the server language, so
// deployments keep it at mn to match the questionnaire text.
func Middleware(lang string) func(http.Handler) http.Handler {
	loc := NewLocalizer(lang)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLocalizer(r.Context(), loc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
