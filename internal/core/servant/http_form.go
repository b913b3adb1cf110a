package servant

import (
	"net/http"
	"strconv"

	"github.com/velkorra/chaldea/internal/platform/apperr"
	requestutil "github.com/velkorra/chaldea/internal/platform/request"
)

// decodeServantForm maps supplied form fields onto a partial update. A field
// absent from the form stays nil and keeps its stored value.
func decodeServantForm(request *http.Request) (Update, error) {
	if err := requestutil.ParseAnyForm(request); err != nil {
		return Update{}, err
	}

	update := Update{}
	setString := func(field string, target **string) {
		if values, ok := request.Form[field]; ok && len(values) > 0 {
			*target = &values[0]
		}
	}

	setString(FieldName, &update.Name)
	setString(FieldClass, &update.Class)
	setString("state", &update.State)
	setString(FieldAlignment, &update.Alignment)
	setString(FieldGender, &update.Gender)

	setInt := func(field string, target **int) error {
		values, ok := request.Form[field]
		if !ok || len(values) == 0 {
			return nil
		}
		value, err := strconv.Atoi(values[0])
		if err != nil {
			return apperr.ValidationError("Form field '" + field + "' must be an integer")
		}
		*target = &value
		return nil
	}

	if err := setInt(FieldLevel, &update.Level); err != nil {
		return Update{}, err
	}
	if err := setInt(FieldAscension, &update.AscensionLevel); err != nil {
		return Update{}, err
	}

	return update, nil
}
