package handlers

import (
	"sync"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the ledger binding tags to gin's validator:
//
//	ledger_source      a source clients may post directly
//	ledger_source_any  any known source, for filters
//	adjustment_type    fee, interest, timing or other
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err = v.RegisterValidation("ledger_source", func(fl validator.FieldLevel) bool {
			s := domain.Source(fl.Field().String())
			return s.Valid() && !s.EngineOwned()
		}); err != nil {
			return
		}
		if err = v.RegisterValidation("ledger_source_any", func(fl validator.FieldLevel) bool {
			return domain.Source(fl.Field().String()).Valid()
		}); err != nil {
			return
		}
		err = v.RegisterValidation("adjustment_type", func(fl validator.FieldLevel) bool {
			return domain.AdjustmentType(fl.Field().String()).Valid()
		})
	})
	return err
}
