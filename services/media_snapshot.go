package services

import "knowledgehub-api/models"

// SnapshotMedia copies an article's live media list by value for embedding in
// a version document. The snapshot keeps no reference to the live rows, which
// may later change or be deleted.
func SnapshotMedia(items []models.Media) []models.MediaSnapshot {
	snapshots := make([]models.MediaSnapshot, 0, len(items))
	for _, item := range items {
		snapshots = append(snapshots, models.MediaSnapshot{
			URL:         item.URL,
			Type:        string(item.Type),
			Description: item.Description,
		})
	}
	return snapshots
}

// MaterializeMedia turns a version's media snapshot back into fresh live media
// rows for re-attachment during restore. Row ids are left zero so the store
// assigns new identities.
func MaterializeMedia(articleID uint, items []models.MediaSnapshot) []models.Media {
	media := make([]models.Media, 0, len(items))
	for _, item := range items {
		media = append(media, models.Media{
			ArticleID:   articleID,
			URL:         item.URL,
			Type:        models.MediaType(item.Type),
			Description: item.Description,
		})
	}
	return media
}
