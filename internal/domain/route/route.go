// Package route turns the optional {id} and {action} URL segments shared by
// the feedback and PDI pages into a single view selection.
package route

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	ActionNew  = "new"
	ActionEdit = "edit"
)

var ErrInvalidRoute = errors.New("invalid route")

type Kind int

const (
	KindList Kind = iota
	KindDetail
	KindCreate
	KindEdit
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindDetail:
		return "detail"
	case KindCreate:
		return "create"
	case KindEdit:
		return "edit"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// View is the disambiguated page selection. ID is only meaningful for
// KindDetail and KindEdit.
type View struct {
	Kind Kind
	ID   int
}

func List() View { return View{Kind: KindList} }
func Detail(id int) View { return View{Kind: KindDetail, ID: id} }
func Create() View { return View{Kind: KindCreate} }
func Edit(id int) View { return View{Kind: KindEdit, ID: id} }
func (v View) IsForm() bool { return v.Kind == KindCreate || v.Kind == KindEdit }

// Parse maps the raw route parameters to a View:
//
//	""            ""      -> List
//	"new"         ""      -> Create
//	any           "new"   -> Create
//	<int>         "edit"  -> Edit(id)
//	<int>         ""      -> Detail(id)
//
// Every other combination, including non-numeric or non-positive ids,
// returns ErrInvalidRoute.
func Parse(id, action string) (View, error) {
	id = strings.TrimSpace(id)
	action = strings.ToLower(strings.TrimSpace(action))

	if id == "" {
		if action != "" {
			return View{}, fmt.Errorf("%w: action %q without id", ErrInvalidRoute, action)
		}
		return List(), nil
	}

	switch action {
	case ActionNew:
		return Create(), nil
	case ActionEdit:
		n, err := parseID(id)
		if err != nil {
			return View{}, err
		}
		return Edit(n), nil
	case "":
		if strings.EqualFold(id, ActionNew) {
			return Create(), nil
		}
		n, err := parseID(id)
		if err != nil {
			return View{}, err
		}
		return Detail(n), nil
	}
	return View{}, fmt.Errorf("%w: unknown action %q", ErrInvalidRoute, action)
}

func parseID(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: id %q", ErrInvalidRoute, raw)
	}
	return n, nil
}
