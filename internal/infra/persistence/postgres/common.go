package postgres

import (
	"context"

	"nms/internal/domain/entity"
	"nms/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// auditColumnsOnCreate are never rewritten by updates.
var auditColumnsOnCreate = []string{"id", "created_by", "created_date"}

func toCommonDomain(data model.CommonFieldModel) entity.CommonField {
	return entity.CommonField{
		CreatedBy:       data.CreatedBy,
		CreatedDate:     data.CreatedDate,
		UpdatedBy:       data.UpdatedBy,
		LastUpdatedDate: data.LastUpdatedDate,
		UpdatedCount:    data.UpdatedCount,
	}
}

func fromCommonDomain(data entity.CommonField) model.CommonFieldModel {
	return model.CommonFieldModel{
		CreatedBy:       data.CreatedBy,
		CreatedDate:     data.CreatedDate,
		UpdatedBy:       data.UpdatedBy,
		LastUpdatedDate: data.LastUpdatedDate,
		UpdatedCount:    data.UpdatedCount,
	}
}

// updateByID rewrites every mutable column of the row identified by id.
// Zero values are written too, so callers must pass the fully merged record.
func updateByID(ctx context.Context, db *gorm.DB, value any, id int64) (int64, error) {
	result := db.WithContext(ctx).
		Model(value).
		Where("id = ?", id).
		Select("*").
		Omit(auditColumnsOnCreate...).
		Updates(value)

	return result.RowsAffected, result.Error
}
