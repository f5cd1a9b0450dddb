// Package validation registers the custom binding validators used by the
// request DTOs. Register must run before any handler binds a request that
// uses one of the custom tags.
package validation

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Seat ids look like "<section>-<ROW><number>", e.g. "orchestra-A12".
var seatIDPattern = regexp.MustCompile(`^[a-z0-9-]+-[A-Z]+[0-9]+$`)

var registerOnce sync.Once

// Register installs the custom validators on gin's binding engine. It is
// safe to call from multiple packages; registration happens once.
func Register() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterValidation("seatid", func(fl validator.FieldLevel) bool {
				return seatIDPattern.MatchString(fl.Field().String())
			})
		}
	})
}
