package contracts

import "github.com/julienschmidt/httprouter"

// Handler is implemented by every resource handler mounted on the app router.
type Handler interface {
	RegisterRoutes(router *httprouter.Router)
}
