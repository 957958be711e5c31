package handlers

import (
	"errors"
	"time"

	"almacen/internal/log"
	"almacen/internal/services"
	"almacen/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return renderLoginErr(c)
	}
	if !validate.Password(pass) {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_password_format"})
		return renderLoginErr(c)
	}

	if _, err := h.Auth.Login(sid, email, pass); err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return renderLoginErr(c)
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/dashboard")
}

func renderLoginErr(c *fiber.Ctx) error {
	return c.Status(401).Render("login", fiber.Map{
		"Err":       "Credenciales inválidas.",
		"CSRFToken": c.Cookies("csrf_"),
	})
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		return c.Status(400).Render("register", fiber.Map{
			"Err":       "Correo inválido.",
			"CSRFToken": c.Cookies("csrf_"),
		})
	}
	pass := c.FormValue("password")
	if !validate.Password(pass) {
		return c.Status(400).Render("register", fiber.Map{
			"Err":       "La contraseña debe tener al menos 8 caracteres.",
			"CSRFToken": c.Cookies("csrf_"),
		})
	}

	if _, err := h.Auth.Register(email, pass); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			log.Security(c, "auth.register.duplicate", map[string]any{"email": email})
			return c.Status(409).Render("register", fiber.Map{
				"Err":       "Error: El correo ya está en uso.",
				"CSRFToken": c.Cookies("csrf_"),
			})
		}
		log.Error(c, "auth.register.fail", err, map[string]any{"email": email})
		return fiber.ErrInternalServerError
	}

	log.Audit(c, "auth.register.success", map[string]any{"email": email})
	setFlash(c, "Usuario registrado con éxito.")
	return c.Redirect("/login")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	// Expire cookie
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	setFlash(c, "Sesión cerrada.")
	return c.Redirect("/login")
}
