package repository

import "gorm.io/gorm"

const maxPageSize = 100

// paginate counts q and fetches one page of it in the given order. page is
// 1-based.
func paginate[T any](q *gorm.DB, order string, page, limit int) ([]T, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageSize {
		limit = 10
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []T
	err := q.Order(order).Offset((page - 1) * limit).Limit(limit).Find(&out).Error
	return out, total, err
}
