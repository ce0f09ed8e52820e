package constants

// Role utama aplikasi (disimpan di kolom users.role & klaim JWT "role")
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleUser    = "user"
)

// AdminAndAbove: role yang boleh mengelola data master sekolah
var AdminAndAbove = []string{RoleOwner, RoleAdmin}

// StaffAndAbove: role yang boleh mengelola jadwal & absensi
var StaffAndAbove = []string{RoleOwner, RoleAdmin, RoleTeacher}

var AllowAll = []string{RoleOwner, RoleAdmin, RoleTeacher, RoleStudent, RoleUser}
