package catalog

import "menuboard/internal/square"

// relatedIndex resolves category and image references in O(1). Built once
// per aggregation from the related objects returned alongside the item pages.
type relatedIndex struct {
	categoryByID map[string]square.CatalogObject
	imageByID    map[string]square.CatalogObject
}

func newRelatedIndex(objects []square.CatalogObject) *relatedIndex {
	index := &relatedIndex{
		categoryByID: make(map[string]square.CatalogObject),
		imageByID:    make(map[string]square.CatalogObject),
	}
	for _, obj := range objects {
		if obj.ID == "" {
			continue
		}
		switch obj.Type {
		case square.TypeCategory:
			index.categoryByID[obj.ID] = obj
		case square.TypeImage:
			index.imageByID[obj.ID] = obj
		}
		// Other related types are ignored.
	}
	return index
}

func (ix *relatedIndex) category(id string) (square.CatalogObject, bool) {
	obj, ok := ix.categoryByID[id]
	return obj, ok
}

func (ix *relatedIndex) categoryName(id string) (string, bool) {
	obj, ok := ix.categoryByID[id]
	if !ok || obj.CategoryData == nil {
		return "", false
	}
	return obj.CategoryData.Name, true
}

func (ix *relatedIndex) imageURL(id string) (string, bool) {
	obj, ok := ix.imageByID[id]
	if !ok || obj.ImageData == nil || obj.ImageData.URL == "" {
		return "", false
	}
	return obj.ImageData.URL, true
}
