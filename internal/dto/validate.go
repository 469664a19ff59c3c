package dto

import "github.com/go-playground/validator/v10"

// Validate is shared by the handlers; validator instances cache struct
// metadata, so a single one is reused.
var Validate = validator.New()
