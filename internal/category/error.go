package category

import "storefront-be/internal/apperror"

var ErrCategoryNotFound = apperror.New(apperror.KindNotFound, "Category not found")
