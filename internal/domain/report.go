package domain

import "time"

// ReportReason is the closed set of reasons a reporter may choose.
type ReportReason string

const (
	ReasonInappropriate  ReportReason = "inappropriate_content"
	ReasonSpam           ReportReason = "spam"
	ReasonMisinformation ReportReason = "misinformation"
	ReasonHateSpeech     ReportReason = "hate_speech"
	ReasonViolence       ReportReason = "violence"
	ReasonCopyright      ReportReason = "copyright"
	ReasonOther          ReportReason = "other"
)

// ValidReportReasons contains all valid report reasons.
var ValidReportReasons = []ReportReason{
	ReasonInappropriate, ReasonSpam, ReasonMisinformation, ReasonHateSpeech,
	ReasonViolence, ReasonCopyright, ReasonOther,
}

// IsValidReportReason checks if a reason is valid.
func IsValidReportReason(reason string) bool {
	for _, r := range ValidReportReasons {
		if string(r) == reason {
			return true
		}
	}
	return false
}

// ReportStatus represents the moderation status of a report.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportReviewed ReportStatus = "reviewed"
	ReportResolved ReportStatus = "resolved"
	ReportRejected ReportStatus = "rejected"
)

// ValidReportStatuses contains all valid report statuses.
var ValidReportStatuses = []ReportStatus{ReportPending, ReportReviewed, ReportResolved, ReportRejected}

// IsValidReportStatus checks if a report status is valid.
func IsValidReportStatus(status string) bool {
	for _, s := range ValidReportStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

// Report is a reader's complaint about an article.
type Report struct {
	ID          string        `json:"id"`
	ArticleID   string        `json:"articleId"`
	ReportedBy  PrincipalRef  `json:"reportedBy"`
	Reason      ReportReason  `json:"reason"`
	Description string        `json:"description"`
	Status      ReportStatus  `json:"status"`
	AdminNotes  string        `json:"adminNotes,omitempty"`
	ReviewedBy  *PrincipalRef `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time    `json:"reviewedAt,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Review applies an admin status change. Leaving pending stamps the reviewer
// and time; later changes keep the original stamp.
func (r *Report) Review(status ReportStatus, notes string, reviewer PrincipalRef, now time.Time) error {
	if !IsValidReportStatus(string(status)) {
		return Validationf("invalid report status %q", status)
	}
	if r.Status == ReportPending && status != ReportPending && r.ReviewedBy == nil {
		ref := reviewer
		r.ReviewedBy = &ref
		r.ReviewedAt = &now
	}
	r.Status = status
	if notes != "" {
		r.AdminNotes = notes
	}
	r.UpdatedAt = now
	return nil
}

// ReportCountRow is one aggregated (status, reason) bucket as read from storage.
type ReportCountRow struct {
	Status ReportStatus
	Reason ReportReason
	Count  int
}

// ReportCounts is the moderation dashboard summary.
type ReportCounts struct {
	Pending  int                  `json:"pending"`
	Reviewed int                  `json:"reviewed"`
	Resolved int                  `json:"resolved"`
	Rejected int                  `json:"rejected"`
	Total    int                  `json:"total"`
	ByReason map[ReportReason]int `json:"byReason"`
}

// FoldReportCounts folds aggregated rows into per-status and per-reason totals.
func FoldReportCounts(rows []ReportCountRow) ReportCounts {
	counts := ReportCounts{ByReason: make(map[ReportReason]int, len(ValidReportReasons))}
	for _, reason := range ValidReportReasons {
		counts.ByReason[reason] = 0
	}
	for _, row := range rows {
		switch row.Status {
		case ReportPending:
			counts.Pending += row.Count
		case ReportReviewed:
			counts.Reviewed += row.Count
		case ReportResolved:
			counts.Resolved += row.Count
		case ReportRejected:
			counts.Rejected += row.Count
		}
		counts.ByReason[row.Reason] += row.Count
		counts.Total += row.Count
	}
	return counts
}
