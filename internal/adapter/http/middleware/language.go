package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/JacobNatural/task-manager/pkg/translator"
)

const langKey = "lang"

// LanguageMiddleware stores the best supported match for the Accept-Language
// header in the context.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, translator.Match(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
