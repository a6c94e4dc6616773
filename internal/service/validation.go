package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maxviazov/bjj-scoreboard/internal/model"
)

var validate = validator.New()

// validateInformation turns validator failures into FieldErrors keyed by snake_case paths,
// e.g. "competitor_one.country".
func validateInformation(info model.MatchInformation) error {
	err := validate.Struct(info)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	ferrs := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		ferrs = append(ferrs, FieldError{Field: fieldPath(fe.Namespace()), Message: ruleMessage(fe)})
	}
	return newInvalidInput(ferrs)
}

var fieldNames = map[string]string{
	"CompetitorOne":    "competitor_one",
	"CompetitorTwo":    "competitor_two",
	"FirstName":        "first_name",
	"LastName":         "last_name",
	"TeamName":         "team_name",
	"Country":          "country",
	"MatchTimeMinutes": "match_time_minutes",
	"MatNumber":        "mat_number",
	"FightNumber":      "fight_number",
}

// fieldPath maps "MatchInformation.CompetitorOne.Country" to "competitor_one.country".
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if name, ok := fieldNames[p]; ok {
			parts[i] = name
		}
	}
	return strings.Join(parts, ".")
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "iso3166_1_alpha2":
		return "must be an ISO 3166-1 alpha-2 country code"
	case "min":
		return "must be >= " + fe.Param()
	case "max":
		return "must be <= " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}

func competitorError(competitor model.CompetitorNumber) error {
	if competitor.Valid() {
		return nil
	}
	return newInvalidInput([]FieldError{{Field: "competitor", Message: "must be one of one|two"}})
}
