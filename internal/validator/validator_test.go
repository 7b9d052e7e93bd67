package validator

import (
	"strings"
	"testing"

	"content-platform/internal/domain"
)

func TestValidateSignup(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		input   *domain.SignupInput
		wantErr bool
		errMsg  string
	}{
		{
			name:  "valid signup",
			input: &domain.SignupInput{Username: "ada.l", Email: "ada@example.com", Password: "secret1"},
		},
		{
			name:    "missing username",
			input:   &domain.SignupInput{Email: "ada@example.com", Password: "secret1"},
			wantErr: true,
			errMsg:  "username",
		},
		{
			name:    "username with spaces",
			input:   &domain.SignupInput{Username: "ada l", Email: "ada@example.com", Password: "secret1"},
			wantErr: true,
			errMsg:  "invalid_username_format",
		},
		{
			name:    "invalid email format",
			input:   &domain.SignupInput{Username: "ada", Email: "invalid-email", Password: "secret1"},
			wantErr: true,
			errMsg:  "invalid_email_format",
		},
		{
			name:    "short password",
			input:   &domain.SignupInput{Username: "ada", Email: "ada@example.com", Password: "12345"},
			wantErr: true,
			errMsg:  "password_too_short",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSignup(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSignup() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if domain.KindOf(err) != domain.KindValidation {
					t.Errorf("ValidateSignup() kind = %v, want validation", domain.KindOf(err))
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateSignup() error = %v, should contain %v", err, tt.errMsg)
				}
			}
		})
	}
}

func TestValidateArticle(t *testing.T) {
	v := NewValidator()

	valid := func() *domain.ArticleInput {
		return &domain.ArticleInput{
			Title:    "Consensus",
			Content:  "Body",
			Category: "systems",
			Media:    &domain.Media{Type: domain.MediaImage, URL: "https://cdn.example.org/a.png"},
			Sources:  []domain.Source{{Kind: domain.SourceBook, Value: "DDIA"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*domain.ArticleInput)
		wantErr bool
		errMsg  string
	}{
		{name: "valid article", mutate: func(*domain.ArticleInput) {}},
		{name: "no media no sources", mutate: func(in *domain.ArticleInput) { in.Media = nil; in.Sources = nil }},
		{name: "missing title", mutate: func(in *domain.ArticleInput) { in.Title = "" }, wantErr: true, errMsg: "title_required"},
		{name: "missing content", mutate: func(in *domain.ArticleInput) { in.Content = "" }, wantErr: true, errMsg: "content_required"},
		{name: "missing category", mutate: func(in *domain.ArticleInput) { in.Category = "" }, wantErr: true, errMsg: "category_required"},
		{
			name:    "unknown media type",
			mutate:  func(in *domain.ArticleInput) { in.Media.Type = "gif" },
			wantErr: true,
			errMsg:  "invalid_media_type",
		},
		{
			name:    "media url missing",
			mutate:  func(in *domain.ArticleInput) { in.Media.URL = "" },
			wantErr: true,
			errMsg:  "media_url_required",
		},
		{
			name: "unknown source kind",
			mutate: func(in *domain.ArticleInput) {
				in.Sources = append(in.Sources, domain.Source{Kind: "podcast", Value: "ep 12"})
			},
			wantErr: true,
			errMsg:  "invalid_source_kind",
		},
		{
			name:    "empty source value",
			mutate:  func(in *domain.ArticleInput) { in.Sources[0].Value = "" },
			wantErr: true,
			errMsg:  "source_value_required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(in)
			err := v.ValidateArticle(in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateArticle() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateArticle() error = %v, should contain %v", err, tt.errMsg)
			}
		})
	}
}

func TestValidateComment(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateComment("Nice write-up"); err != nil {
		t.Errorf("ValidateComment() error = %v, want nil", err)
	}
	if err := v.ValidateComment("   "); err == nil || !strings.Contains(err.Error(), "text_required") {
		t.Errorf("ValidateComment(blank) error = %v, want text_required", err)
	}
	if err := v.ValidateComment(strings.Repeat("é", MaxCommentLength)); err != nil {
		t.Errorf("ValidateComment(max) error = %v, want nil", err)
	}
	if err := v.ValidateComment(strings.Repeat("a", MaxCommentLength+1)); err == nil {
		t.Error("ValidateComment(too long) error = nil, want error")
	}
}

func TestValidateReport(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateReport(&domain.ReportInput{Reason: domain.ReasonSpam}); err != nil {
		t.Errorf("ValidateReport() error = %v, want nil", err)
	}
	if err := v.ValidateReport(&domain.ReportInput{Reason: "boring"}); err == nil || !strings.Contains(err.Error(), "invalid_reason") {
		t.Errorf("ValidateReport(boring) error = %v, want invalid_reason", err)
	}
	if err := v.ValidateReport(&domain.ReportInput{}); err == nil || !strings.Contains(err.Error(), "reason_required") {
		t.Errorf("ValidateReport(empty) error = %v, want reason_required", err)
	}
}

func TestValidateReportReview(t *testing.T) {
	v := NewValidator()

	for _, status := range domain.ValidReportStatuses {
		if err := v.ValidateReportReview(&domain.ReportReview{Status: status}); err != nil {
			t.Errorf("ValidateReportReview(%s) error = %v, want nil", status, err)
		}
	}
	if err := v.ValidateReportReview(&domain.ReportReview{Status: "closed"}); err == nil {
		t.Error("ValidateReportReview(closed) error = nil, want error")
	}
}

func TestValidateProfileUpdate(t *testing.T) {
	v := NewValidator()
	site := "https://ada.dev"
	bad := "not a url"
	long := strings.Repeat("b", 501)

	if err := v.ValidateProfileUpdate(&domain.ProfileUpdate{Website: &site}); err != nil {
		t.Errorf("ValidateProfileUpdate() error = %v, want nil", err)
	}
	if err := v.ValidateProfileUpdate(&domain.ProfileUpdate{}); err != nil {
		t.Errorf("ValidateProfileUpdate(empty) error = %v, want nil", err)
	}
	if err := v.ValidateProfileUpdate(&domain.ProfileUpdate{Website: &bad}); err == nil {
		t.Error("ValidateProfileUpdate(bad url) error = nil, want error")
	}

	err := v.ValidateProfileUpdate(&domain.ProfileUpdate{Bio: &long})
	fields := FieldErrors(err)
	if fields["bio"] != "bio_too_long" {
		t.Errorf("FieldErrors() = %v, want bio_too_long", fields)
	}
}

func TestValidateID(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateID("id", "123e4567-e89b-12d3-a456-426614174000"); err != nil {
		t.Errorf("ValidateID() error = %v, want nil", err)
	}
	err := v.ValidateID("id", "42")
	if err == nil || domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("ValidateID(42) error = %v, want validation error", err)
	}
	if !strings.Contains(err.Error(), "invalid_id") {
		t.Errorf("ValidateID(42) error = %v, should contain invalid_id", err)
	}
}
