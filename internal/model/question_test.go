package model

import (
	"encoding/json"
	"testing"
)

func TestOptionMap(t *testing.T) {
	q := Question{Options: json.RawMessage(`{"a":"Jakarta","b":"Bandung","c":"Surabaya"}`)}
	m := q.OptionMap()
	if len(m) != 3 || m["a"] != "Jakarta" {
		t.Errorf("OptionMap() = %v", m)
	}

	if (&Question{}).OptionMap() != nil {
		t.Error("empty options should yield nil")
	}
	if (&Question{Options: json.RawMessage(`not json`)}).OptionMap() != nil {
		t.Error("malformed options should yield nil")
	}
}

func TestUserRoleValid(t *testing.T) {
	for _, role := range AllRoles() {
		if !role.Valid() {
			t.Errorf("%s should be valid", role)
		}
	}
	if UserRole("teacher").Valid() {
		t.Error("unknown role should be invalid")
	}
}

func TestAbsensiStatusValid(t *testing.T) {
	for _, s := range []AbsensiStatus{StatusHadir, StatusSakit, StatusIzin, StatusAlpa} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if AbsensiStatus("present").Valid() {
		t.Error("unknown status should be invalid")
	}
}
