// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"testing"

	"github.com/dacolabs/modelgen/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepare(t *testing.T) {
	class := &schema.ClassDescriptor{
		Name: "User",
		Properties: []schema.PropertyDescriptor{
			schema.NewProperty("Id", schema.ParseType("int"), true),
			schema.NewProperty("Name", schema.ParseType("string"), false),
			schema.NewProperty("Email", schema.ParseType("string?"), false),
		},
	}

	data, err := Prepare(class, stubResolver{}, MapOptions{})
	require.NoError(t, err)

	assert.Equal(t, "User", data.Source)
	assert.Equal(t, "UserModel", data.Name)
	assert.NotNil(t, data.Extra)
	assert.Equal(t, []Field{
		{Name: "id", Key: "Id", Type: "Integer", Required: true},
		{Name: "name", Key: "Name", Type: "Text", Required: true},
		{Name: "email", Key: "Email", Type: "Text?", Nullable: true},
	}, data.Fields)
}

func TestPrepare_KeepsDeclarationOrder(t *testing.T) {
	props := []schema.PropertyDescriptor{
		schema.NewProperty("Zeta", schema.ParseType("int"), false),
		schema.NewProperty("Alpha", schema.ParseType("int"), false),
		schema.NewProperty("Mid", schema.ParseType("int?"), false),
	}

	data, err := Prepare(&schema.ClassDescriptor{Name: "Order", Properties: props}, stubResolver{}, MapOptions{})
	require.NoError(t, err)

	var keys []string
	for _, f := range data.Fields {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, keys)
}

func TestPrepare_MissingName(t *testing.T) {
	_, err := Prepare(&schema.ClassDescriptor{}, stubResolver{}, MapOptions{})
	assert.Error(t, err)

	_, err = Prepare(nil, stubResolver{}, MapOptions{})
	assert.Error(t, err)
}

func TestPrepare_FieldNameCollision(t *testing.T) {
	class := &schema.ClassDescriptor{
		Name: "User",
		Properties: []schema.PropertyDescriptor{
			schema.NewProperty("Id", schema.Primitive{Name: "int"}, true),
			schema.NewProperty("id", schema.Primitive{Name: "string"}, false),
		},
	}

	_, err := Prepare(class, stubResolver{}, MapOptions{})
	require.Error(t, err)
	assert.Equal(t, `User: properties "Id" and "id" both become field "id"`, err.Error())
}

func TestLowerFirst(t *testing.T) {
	tests := map[string]string{
		"Id":        "id",
		"FirstName": "firstName",
		"URL":       "uRL",
		"already":   "already",
		"":          "",
		"Über":      "über",
		"_private":  "_private",
	}
	for in, want := range tests {
		assert.Equal(t, want, LowerFirst(in), in)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"UserModel":      "user_model",
		"HTTPRequestLog": "http_request_log",
		"User2Model":     "user2_model",
		"my-port":        "my_port",
		"already_snake":  "already_snake",
		"A":              "a",
	}
	for in, want := range tests {
		assert.Equal(t, want, ToSnakeCase(in), in)
	}
}

func TestRegister(t *testing.T) {
	r := make(Register)
	_, err := r.Get("dart")
	assert.Error(t, err)
	assert.Empty(t, r.Available())
}

func TestToPascalCase(t *testing.T) {
	tests := map[string]string{
		"user":          "User",
		"order_line":    "OrderLine",
		"shipping-info": "ShippingInfo",
		"Address":       "Address",
		"":              "",
	}
	for in, want := range tests {
		assert.Equal(t, want, ToPascalCase(in), in)
	}
}
