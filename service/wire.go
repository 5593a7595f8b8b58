package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(ProfileService), "*"),
	wire.Bind(new(IProfileService), new(*ProfileService)),
)
