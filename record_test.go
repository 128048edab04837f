package dircache

import (
	"testing"
	"time"

	"github.com/jackc/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeUser() *Record {
	record := NewRecord(fake.UserName())
	record.Set("firstName", fake.FirstName())
	record.Set("lastName", fake.LastName())
	record.Set("email", fake.EmailAddress())
	record.Set("company", fake.Company())
	record.Set("age", 42)
	record.Set("createdAt", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	record.Set("aliases", []string{fake.UserName(), fake.UserName()})
	record.Set("avatar", []byte{0x1, 0x2})
	record.Set("address", map[string]any{
		"city":  fake.City(),
		"lines": []any{fake.Street(), "floor 2"},
	})
	record.SetReferences("groups", []string{"members", "administrators"})
	return record
}

func TestRecord(t *testing.T) {
	assert := assert.New(t)

	t.Run("get_set", func(t *testing.T) {
		record := &Record{ID: "jdoe"}
		_, ok := record.Get("email")
		assert.False(ok)

		record.Set("email", "jdoe@example.com")
		value, ok := record.Get("email")
		assert.True(ok)
		assert.Equal("jdoe@example.com", value)
	})

	t.Run("set_references_copies_ids", func(t *testing.T) {
		record := NewRecord("jdoe")
		assert.False(record.HasReferences())

		ids := []string{"members"}
		record.SetReferences("groups", ids)
		ids[0] = "administrators"

		assert.True(record.HasReferences())
		assert.Equal([]string{"members"}, record.References["groups"])
	})

	t.Run("clone_is_deep", func(t *testing.T) {
		record := fakeUser()
		record.SetReadOnly(true)

		clone, err := record.Clone()
		require.NoError(t, err)
		assert.NotSame(record, clone)
		assert.True(record.Equal(clone))
		assert.False(clone.IsReadOnly())

		clone.Set("email", "changed@example.com")
		clone.Fields["aliases"].([]string)[0] = "changed"
		clone.Fields["avatar"].([]byte)[0] = 0x9
		clone.Fields["address"].(map[string]any)["city"] = "changed"
		clone.Fields["address"].(map[string]any)["lines"].([]any)[1] = "changed"
		clone.References["groups"][0] = "changed"

		assert.False(record.Equal(clone))
		assert.NotEqual("changed@example.com", record.Fields["email"])
		assert.NotEqual("changed", record.Fields["aliases"].([]string)[0])
		assert.Equal(byte(0x1), record.Fields["avatar"].([]byte)[0])
		assert.NotEqual("changed", record.Fields["address"].(map[string]any)["city"])
		assert.Equal("floor 2", record.Fields["address"].(map[string]any)["lines"].([]any)[1])
		assert.Equal("members", record.References["groups"][0])
	})

	t.Run("clone_uncloneable", func(t *testing.T) {
		record := NewRecord("jdoe")
		record.Set("nested", map[string]any{"channel": make(chan int)})

		_, err := record.Clone()
		assert.ErrorIs(err, ErrUncloneableValue)
	})

	t.Run("clone_nil", func(t *testing.T) {
		var record *Record
		_, err := record.Clone()
		assert.ErrorIs(err, ErrNilRecord)
	})

	t.Run("without_references", func(t *testing.T) {
		record := fakeUser()
		record.SetReadOnly(true)

		clone, err := record.WithoutReferences()
		require.NoError(t, err)
		assert.False(clone.HasReferences())
		assert.True(clone.IsReadOnly())
		assert.True(record.HasReferences())
		assert.Equal(record.Fields["email"], clone.Fields["email"])
	})

	t.Run("equal", func(t *testing.T) {
		a := NewRecord("jdoe")
		a.Set("createdAt", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
		b := NewRecord("jdoe")
		b.Set("createdAt", time.Date(2024, 1, 1, 11, 0, 0, 0, time.FixedZone("CET", 3600)))

		assert.True(a.Equal(b))
		assert.False(a.Equal(nil))
		assert.True((*Record)(nil).Equal(nil))

		b.Set("extra", true)
		assert.False(a.Equal(b))

		c := NewRecord("asmith")
		c.Set("createdAt", a.Fields["createdAt"])
		assert.False(a.Equal(c))
	})
}
