package repository

import (
	"context"
	"fmt"

	"photodesk/internal/data/entity"
	"photodesk/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GalleryRepository interface {
	Create(ctx context.Context, gallery *entity.Gallery) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Gallery, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Gallery, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, gallery *entity.Gallery) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddImage(ctx context.Context, image *entity.GalleryImage) error
	FindImages(ctx context.Context, galleryID uuid.UUID) ([]*entity.GalleryImage, error)
	RemoveImage(ctx context.Context, imageID uuid.UUID) error
}

type galleryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGalleryRepository(db database.PgxIface, log *zap.Logger) GalleryRepository {
	return &galleryRepository{
		db:  db,
		log: log.With(zap.String("repository", "gallery")),
	}
}

func (r *galleryRepository) Create(ctx context.Context, gallery *entity.Gallery) error {
	query := `
		INSERT INTO galleries (id, booking_id, title, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		gallery.ID,
		gallery.BookingID,
		gallery.Title,
		gallery.IsPublic,
		gallery.CreatedAt,
		gallery.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create gallery",
			zap.Error(err),
			zap.String("title", gallery.Title),
		)
		return fmt.Errorf("create gallery %s: %w", gallery.Title, err)
	}

	return nil
}

func (r *galleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Gallery, error) {
	query := `
		SELECT id, booking_id, title, is_public, created_at, updated_at
		FROM galleries
		WHERE id = $1 AND deleted_at IS NULL
	`

	var gallery entity.Gallery
	err := r.db.QueryRow(ctx, query, id).Scan(
		&gallery.ID,
		&gallery.BookingID,
		&gallery.Title,
		&gallery.IsPublic,
		&gallery.CreatedAt,
		&gallery.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find gallery by ID",
			zap.Error(err),
			zap.String("gallery_id", id.String()),
		)
		return nil, fmt.Errorf("find gallery by ID %s: %w", id.String(), err)
	}

	return &gallery, nil
}

func (r *galleryRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Gallery, error) {
	query := `
		SELECT id, booking_id, title, is_public, created_at, updated_at
		FROM galleries
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find galleries", zap.Error(err))
		return nil, fmt.Errorf("find galleries: %w", err)
	}
	defer rows.Close()

	var galleries []*entity.Gallery
	for rows.Next() {
		var gallery entity.Gallery
		err := rows.Scan(
			&gallery.ID,
			&gallery.BookingID,
			&gallery.Title,
			&gallery.IsPublic,
			&gallery.CreatedAt,
			&gallery.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan gallery row", zap.Error(err))
			return nil, fmt.Errorf("scan gallery row: %w", err)
		}
		galleries = append(galleries, &gallery)
	}

	return galleries, nil
}

func (r *galleryRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM galleries WHERE deleted_at IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count galleries", zap.Error(err))
		return 0, fmt.Errorf("count galleries: %w", err)
	}

	return count, nil
}

func (r *galleryRepository) Update(ctx context.Context, gallery *entity.Gallery) error {
	query := `
		UPDATE galleries
		SET booking_id = $2, title = $3, is_public = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		gallery.ID,
		gallery.BookingID,
		gallery.Title,
		gallery.IsPublic,
		gallery.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update gallery",
			zap.Error(err),
			zap.String("gallery_id", gallery.ID.String()),
		)
		return fmt.Errorf("update gallery %s: %w", gallery.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("gallery %s not found", gallery.ID.String())
	}

	return nil
}

func (r *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE galleries SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete gallery",
			zap.Error(err),
			zap.String("gallery_id", id.String()),
		)
		return fmt.Errorf("delete gallery %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("gallery %s not found", id.String())
	}

	return nil
}

func (r *galleryRepository) AddImage(ctx context.Context, image *entity.GalleryImage) error {
	query := `
		INSERT INTO gallery_images (id, gallery_id, url, caption, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		image.ID,
		image.GalleryID,
		image.URL,
		image.Caption,
		image.Position,
		image.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to add gallery image",
			zap.Error(err),
			zap.String("gallery_id", image.GalleryID.String()),
		)
		return fmt.Errorf("add image to gallery %s: %w", image.GalleryID.String(), err)
	}

	return nil
}

func (r *galleryRepository) FindImages(ctx context.Context, galleryID uuid.UUID) ([]*entity.GalleryImage, error) {
	query := `
		SELECT id, gallery_id, url, caption, position, created_at
		FROM gallery_images
		WHERE gallery_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, galleryID)
	if err != nil {
		r.log.Error("Failed to find gallery images",
			zap.Error(err),
			zap.String("gallery_id", galleryID.String()),
		)
		return nil, fmt.Errorf("find images for gallery %s: %w", galleryID.String(), err)
	}
	defer rows.Close()

	var images []*entity.GalleryImage
	for rows.Next() {
		var image entity.GalleryImage
		err := rows.Scan(
			&image.ID,
			&image.GalleryID,
			&image.URL,
			&image.Caption,
			&image.Position,
			&image.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan gallery image row", zap.Error(err))
			return nil, fmt.Errorf("scan gallery image row: %w", err)
		}
		images = append(images, &image)
	}

	return images, nil
}

func (r *galleryRepository) RemoveImage(ctx context.Context, imageID uuid.UUID) error {
	query := `DELETE FROM gallery_images WHERE id = $1`

	result, err := r.db.Exec(ctx, query, imageID)
	if err != nil {
		r.log.Error("Failed to remove gallery image",
			zap.Error(err),
			zap.String("image_id", imageID.String()),
		)
		return fmt.Errorf("remove gallery image %s: %w", imageID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("gallery image %s not found", imageID.String())
	}

	return nil
}
