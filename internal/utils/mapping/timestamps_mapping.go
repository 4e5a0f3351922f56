package mapping

import (
	"github.com/SscSPs/book_catalog_api/internal/core/domain"
	"github.com/SscSPs/book_catalog_api/internal/models"
)

// ToModelTimestamps converts domain Timestamps to model Timestamps
func ToModelTimestamps(d domain.Timestamps) models.Timestamps {
	return models.Timestamps{
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDomainTimestamps converts model Timestamps to domain Timestamps
func ToDomainTimestamps(m models.Timestamps) domain.Timestamps {
	return domain.Timestamps{
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
