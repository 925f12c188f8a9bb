package state

import (
	"context"

	"github.com/avolkov/hirelink/internal/storage"
)

// Page is the generic (candidate-facing) surface enum.
type Page string

const (
	PageHome          Page = "home"
	PageJobs          Page = "jobs"
	PageApplications  Page = "applications"
	PageNotifications Page = "notifications"
	PageProfile       Page = "profile"
)

// AdminPage is the admin surface enum.
type AdminPage string

const (
	AdminHome          AdminPage = "home"
	AdminUsers         AdminPage = "users"
	AdminRoles         AdminPage = "roles"
	AdminConfig        AdminPage = "config"
	AdminNotifications AdminPage = "notifications"
	AdminJobs          AdminPage = "jobs"
)

// HRPage is the HR surface enum.
type HRPage string

const (
	HRHome          HRPage = "home"
	HRJobs          HRPage = "jobs"
	HRApplications  HRPage = "applications"
	HRInterviews    HRPage = "interviews"
	HRNotifications HRPage = "notifications"
)

// ManagerPage is the manager surface enum.
type ManagerPage string

const (
	ManagerHome          ManagerPage = "home"
	ManagerInterviews    ManagerPage = "interviews"
	ManagerFeedback      ManagerPage = "feedback"
	ManagerNotifications ManagerPage = "notifications"
)

// InvigilatorPage is the invigilator surface enum.
type InvigilatorPage string

const (
	InvigilatorHome          InvigilatorPage = "home"
	InvigilatorExams         InvigilatorPage = "exams"
	InvigilatorSchedule      InvigilatorPage = "schedule"
	InvigilatorNotifications InvigilatorPage = "notifications"
)

// NewGenericView is the only persisting view store: it seeds from and writes
// to the durable currentView setting.
func NewGenericView(ctx context.Context, repo storage.Repository) *ViewStore[Page] {
	pages := []Page{PageHome, PageJobs, PageApplications, PageNotifications, PageProfile}
	return NewViewStore(ctx, "generic", pages, PageHome, repo)
}

func NewAdminView() *ViewStore[AdminPage] {
	pages := []AdminPage{AdminHome, AdminUsers, AdminRoles, AdminConfig, AdminNotifications, AdminJobs}
	return NewViewStore(context.Background(), "admin", pages, AdminHome, nil)
}

func NewHRView() *ViewStore[HRPage] {
	pages := []HRPage{HRHome, HRJobs, HRApplications, HRInterviews, HRNotifications}
	return NewViewStore(context.Background(), "hr", pages, HRHome, nil)
}

func NewManagerView() *ViewStore[ManagerPage] {
	pages := []ManagerPage{ManagerHome, ManagerInterviews, ManagerFeedback, ManagerNotifications}
	return NewViewStore(context.Background(), "manager", pages, ManagerHome, nil)
}

func NewInvigilatorView() *ViewStore[InvigilatorPage] {
	pages := []InvigilatorPage{InvigilatorHome, InvigilatorExams, InvigilatorSchedule, InvigilatorNotifications}
	return NewViewStore(context.Background(), "invigilator", pages, InvigilatorHome, nil)
}
