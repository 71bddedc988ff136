package model

import (
	"time"

	"github.com/m-mizutani/octosearch/pkg/domain/types"
)

// Credential is the OAuth access token of the signed in user. Only one exists per device.
type Credential struct {
	Token     types.AccessToken `json:"token" masq:"secret"`
	UpdatedAt time.Time         `json:"updated_at"`
}
