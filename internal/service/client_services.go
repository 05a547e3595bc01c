package service

import (
	"github.com/MKhiriev/go-currency-converter/internal/adapter"
	"github.com/MKhiriev/go-currency-converter/internal/logger"
	"github.com/MKhiriev/go-currency-converter/internal/store"
	"github.com/MKhiriev/go-currency-converter/internal/validators"
	"github.com/MKhiriev/go-currency-converter/models"
)

type ClientServices struct {
	Session    SessionManager
	Converter  ConversionViewModel
	RefreshJob RateRefreshJob
}

func NewClientServices(
	storages *store.ClientStorages,
	auth adapter.AuthAdapter,
	rates adapter.RateAdapter,
	initial models.ConversionRequest,
	log *logger.Logger,
) *ClientServices {
	converter := NewConversionViewModel(rates, initial, log)

	return &ClientServices{
		Session:    NewSessionManager(storages.Session, auth, validators.NewCredentialsValidator(), log),
		Converter:  converter,
		RefreshJob: NewRateRefreshJob(converter, log),
	}
}
