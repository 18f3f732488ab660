package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type registrarFunc func(rg *gin.RouterGroup)

func (f registrarFunc) RegisterRoutes(rg *gin.RouterGroup) { f(rg) }

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterRegister(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	r.Register(registrarFunc(func(rg *gin.RouterGroup) {}))

	assert.Len(t, r.registrars, 1)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v1"))

	r.Register(registrarFunc(func(rg *gin.RouterGroup) {
		rg.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})
	}))
	r.Setup()

	req := httptest.NewRequest("GET", "/api/v1/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestRouterGroupMiddleware(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	r.Use(func(c *gin.Context) {
		c.Header("X-Group-Middleware", "applied")
		c.Next()
	})
	r.Register(registrarFunc(func(rg *gin.RouterGroup) {
		rg.GET("/items", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})
	}))
	r.Setup()

	req := httptest.NewRequest("GET", "/api/v1/items", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, "applied", w.Header().Get("X-Group-Middleware"))

	// Middleware is scoped to the versioned group, not the engine.
	engine.GET("/outside", func(c *gin.Context) {
		c.String(http.StatusOK, "outside")
	})
	req2 := httptest.NewRequest("GET", "/outside", nil)
	w2 := httptest.NewRecorder()
	engine.ServeHTTP(w2, req2)

	assert.Empty(t, w2.Header().Get("X-Group-Middleware"))
}

func TestMultipleRegistrars(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	catalog := registrarFunc(func(rg *gin.RouterGroup) {
		rg.GET("/products", func(c *gin.Context) {
			c.String(http.StatusOK, "products")
		})
	})
	billing := registrarFunc(func(rg *gin.RouterGroup) {
		rg.GET("/invoices", func(c *gin.Context) {
			c.String(http.StatusOK, "invoices")
		})
	})

	r.Register(catalog).Register(billing).Setup()

	req1 := httptest.NewRequest("GET", "/api/v1/products", nil)
	w1 := httptest.NewRecorder()
	engine.ServeHTTP(w1, req1)
	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, "products", w1.Body.String())

	req2 := httptest.NewRequest("GET", "/api/v1/invoices", nil)
	w2 := httptest.NewRecorder()
	engine.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, "invoices", w2.Body.String())
}
