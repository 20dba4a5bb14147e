package sections

import (
	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/store"
)

// ContactRow is one present contact field as shown in a view.
type ContactRow struct {
	Key   string
	Label string
	Icon  models.ContactIcon
	Value string
	// Removable is false for the name, which always exists.
	Removable bool
}

// Contact edits the contact block.
type Contact struct {
	st *store.Store
}

// Rows returns the present fields in display order. Absent fields have no row.
func (c *Contact) Rows() []ContactRow {
	info := c.st.Snapshot().ContactInfo
	if info == nil {
		return nil
	}
	keys := info.Keys()
	rows := make([]ContactRow, 0, len(keys))
	for _, k := range keys {
		v, _ := info.Get(k)
		spec, _ := models.LookupContactField(k)
		rows = append(rows, ContactRow{
			Key:       k,
			Label:     spec.Label,
			Icon:      spec.Icon,
			Value:     v,
			Removable: k != models.ContactNameKey,
		})
	}
	return rows
}

// SetField sets a present field.
func (c *Contact) SetField(key, value string) store.Result {
	return c.st.SetField(store.ContactPath(key), value)
}

// AddField adds an empty catalog field. It reports false for the name, for
// fields outside the catalog and for fields already present.
func (c *Contact) AddField(key string) bool {
	info := c.st.Snapshot().ContactInfo
	if key == models.ContactNameKey || info.Has(key) {
		return false
	}
	if _, ok := models.LookupContactField(key); !ok {
		return false
	}
	c.st.Merge(store.Partial{ContactInfo: info.With(key, "")})
	return true
}

// RemoveField removes a present field. The name cannot be removed.
func (c *Contact) RemoveField(key string) bool {
	info := c.st.Snapshot().ContactInfo
	if key == models.ContactNameKey || !info.Has(key) {
		return false
	}
	c.st.Merge(store.Partial{ContactInfo: info.Without(key)})
	return true
}

// Available lists the catalog fields that can still be added.
func (c *Contact) Available() []models.ContactFieldSpec {
	return models.AvailableContactFields(c.st.Snapshot().ContactInfo)
}
