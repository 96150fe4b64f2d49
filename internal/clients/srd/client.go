// Package srd exposes the 5e SRD API as read-only compendium stores
package srd

import (
	"net/http"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

// DefaultBaseURL is the public SRD API
const DefaultBaseURL = "https://www.dnd5eapi.co/api/2014/"

// Config contains configuration options for the SRD stores
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// Client replaces the HTTP-backed API client, mostly for tests
	Client dnd5e.Interface
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.InvalidField("HTTPTimeout", "must be positive")
	}
	if cfg.CacheTTL < 0 {
		vb.InvalidField("CacheTTL", "must be positive")
	}
	return vb.Build()
}

// Stores creates one store per SRD category
func Stores(cfg *Config) ([]compendium.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	api := cfg.Client
	if api == nil {
		base, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
			Client:  &http.Client{Timeout: cfg.HTTPTimeout},
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create D&D 5e API client")
		}
		api = dnd5e.NewCachedClient(base, cfg.CacheTTL)
	}

	return []compendium.Store{
		&store{
			id:      compendium.StoreSRDSpells,
			docType: vtt.DocumentTypeSpell,
			list:    func() ([]*entities.ReferenceItem, error) { return api.ListSpells(nil) },
			get: func(key string) (*vtt.Document, error) {
				spell, err := api.GetSpell(key)
				if err != nil {
					return nil, err
				}
				return Spell(spell), nil
			},
		},
		&store{
			id:   compendium.StoreSRDEquipment,
			list: api.ListEquipment,
			get: func(key string) (*vtt.Document, error) {
				eq, err := api.GetEquipment(key)
				if err != nil {
					return nil, err
				}
				return Equipment(eq), nil
			},
		},
		&store{
			id:      compendium.StoreSRDClasses,
			docType: vtt.DocumentTypeClass,
			list:    api.ListClasses,
			get: func(key string) (*vtt.Document, error) {
				class, err := api.GetClass(key)
				if err != nil {
					return nil, err
				}
				return Class(class), nil
			},
		},
		&store{
			id:      compendium.StoreSRDRaces,
			docType: vtt.DocumentTypeRace,
			list:    api.ListRaces,
			get: func(key string) (*vtt.Document, error) {
				race, err := api.GetRace(key)
				if err != nil {
					return nil, err
				}
				return Race(race), nil
			},
		},
		&store{
			id:      compendium.StoreSRDFeatures,
			docType: vtt.DocumentTypeFeat,
			list:    api.ListFeatures,
			get: func(key string) (*vtt.Document, error) {
				feature, err := api.GetFeature(key)
				if err != nil {
					return nil, err
				}
				return Feature(feature), nil
			},
		},
	}, nil
}
