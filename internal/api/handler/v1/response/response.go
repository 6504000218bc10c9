package response

import (
	"github.com/rifaapp/rifa-api/internal/domain"
)

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type ReleaseResponse struct {
	Status   string `json:"status"`
	Released int    `json:"released"`
}

type DeleteResponse struct {
	Status   string `json:"status"`
	RaffleID string `json:"raffle_id"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

type ServiceResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}

type VersionResponse struct {
	Version string `json:"version"`
}
