package server

import (
	"Persona/handler"
)

type Handlers struct {
	Profile *handler.Profile
}
