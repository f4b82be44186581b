package delivery

import (
	authdomain "customers-backend/internal/auth/domain"
	"customers-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

const currentCustomerKey = "currentCustomer"

// CurrentUserMiddleware resolves the bearer token in the Authorization
// header into a sanitized customer record and stores it in the request
// context. Resolution failures are soft: the request continues and the
// handler decides how to reject. The middleware never aborts.
func CurrentUserMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, err := authUsecase.CurrentUser(c.Request.Context(), c.GetHeader("Authorization"))
		if err == nil && customer != nil {
			c.Set(currentCustomerKey, customer)
		}
		c.Next()
	}
}

// CurrentCustomer returns the customer resolved by CurrentUserMiddleware,
// or nil when the request carried no valid token.
func CurrentCustomer(c *gin.Context) *authdomain.Customer {
	value, ok := c.Get(currentCustomerKey)
	if !ok {
		return nil
	}
	customer, ok := value.(*authdomain.Customer)
	if !ok {
		return nil
	}
	return customer
}
