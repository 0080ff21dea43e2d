package document

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/document.schema.json
var schemaBytes []byte

var schema = gojsonschema.NewBytesLoader(schemaBytes)

// ValidateJSON проверяет сырой JSON содержимого резюме по схеме.
// Отсутствующие секции допустимы (их дополняет Normalize), ошибки типов
// и неизвестные поля отклоняются до какой-либо записи в БД.
func ValidateJSON(raw []byte) error {
	res, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return ErrValidation(fmt.Sprintf("invalid json: %v", err))
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return ErrValidation("schema validation failed: " + strings.Join(msgs, "; "))
}
