package search

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ashwinyue/toolfinder/internal/model"
)

var resultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("rating", func(fl validator.FieldLevel) bool {
		return model.ValidRating(fl.Field().String())
	})
	return v
}

// ValidateResult 校验搜索结果是否符合响应结构
func ValidateResult(result *model.SearchResult) error {
	if result == nil {
		return fmt.Errorf("%w: nil result", ErrInvalidResult)
	}
	if err := resultValidator.Struct(result); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}
	return nil
}
