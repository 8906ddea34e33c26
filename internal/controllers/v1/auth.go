package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the routes for authentication with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", RegisterUser)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", LoginUser)

	r.OPTIONS("/logout", httputil.OptionsDelete)
	r.DELETE("/logout", Authenticate(), Logout)

	r.OPTIONS("/me", httputil.OptionsGet)
	r.GET("/me", Authenticate(), GetMe)
}

// @Summary		Register
// @Description	Registers a new user with email and password
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		RegisterEditable	true	"User"
// @Router			/v1/auth/register [post]
func RegisterUser(c *gin.Context) {
	var editable RegisterEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	user := models.User{Email: editable.Email}
	err = user.SetPassword(editable.Password)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// @Summary		Login
// @Description	Verifies the credentials and starts a new session
// @Tags			Authentication
// @Accept			json
// @Produce		json
// @Success		201			{object}	LoginResponse
// @Failure		400			{object}	LoginResponse
// @Failure		401			{object}	LoginResponse
// @Failure		500			{object}	LoginResponse
// @Param			credentials	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func LoginUser(c *gin.Context) {
	var editable LoginEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{
			Error: &e,
		})
		return
	}

	user, err := models.UserByEmail(editable.Email)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{
			Error: &e,
		})
		return
	}

	if !user.CheckPassword(editable.Password) {
		e := models.ErrCredentialsInvalid.Error()
		c.JSON(status(models.ErrCredentialsInvalid), LoginResponse{
			Error: &e,
		})
		return
	}

	session := models.Session{UserID: user.ID}
	err = models.DB.Create(&session).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{
			Error: &e,
		})
		return
	}

	data := Login{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      newUser(user),
	}
	c.JSON(http.StatusCreated, LoginResponse{Data: &data})
}

// @Summary		Logout
// @Description	Ends the current session. The token is invalid afterwards.
// @Tags			Authentication
// @Success		204
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/auth/logout [delete]
func Logout(c *gin.Context) {
	session := currentSession(c)

	err := models.DB.Delete(&session).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Current user
// @Description	Returns the user the session belongs to
// @Tags			Authentication
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	UserResponse
// @Router			/v1/auth/me [get]
func GetMe(c *gin.Context) {
	session := currentSession(c)

	data := newUser(session.User)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}
