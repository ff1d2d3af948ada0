package task

import (
	"log"

	"knowledgehub-api/repositories"
)

// OrphanVersionSweepJob deletes version history whose article no longer exists
// in the live store. Article deletion cascades synchronously, so this only
// catches leftovers from partial failures between the two stores.
type OrphanVersionSweepJob struct {
	articleRepo repositories.ArticleRepository
	versionRepo repositories.ArticleVersionRepository
}

func NewOrphanVersionSweepJob(articleRepo repositories.ArticleRepository, versionRepo repositories.ArticleVersionRepository) *OrphanVersionSweepJob {
	return &OrphanVersionSweepJob{
		articleRepo: articleRepo,
		versionRepo: versionRepo,
	}
}

func (j *OrphanVersionSweepJob) Run() {
	swept, err := j.Sweep()
	if err != nil {
		log.Printf("Job %s failed: %v", j.Name(), err)
		return
	}
	if swept > 0 {
		log.Printf("Job %s removed version history for %d deleted articles", j.Name(), swept)
	}
}

// Sweep walks every article id present in the version store and drops the
// history of those missing from the live store. Returns how many articles had
// their history removed.
func (j *OrphanVersionSweepJob) Sweep() (int, error) {
	ids, err := j.versionRepo.DistinctArticleIDs()
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, id := range ids {
		exists, err := j.articleRepo.Exists(id)
		if err != nil {
			return swept, err
		}
		if exists {
			continue
		}
		if err := j.versionRepo.DeleteByArticleID(id); err != nil {
			return swept, err
		}
		swept++
	}
	return swept, nil
}

func (j *OrphanVersionSweepJob) Name() string {
	return "OrphanVersionSweepJob"
}
