package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/unigrade/unigrade-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Department{},
		&models.Student{},
		&models.Course{},
		&models.Mark{},
		&models.Result{},
		&models.GradeBand{},
	))
	return db
}

func seedCohort(t *testing.T, db *gorm.DB) models.Department {
	t.Helper()
	dept := models.Department{Code: "CS", Name: "Computer Science"}
	require.NoError(t, db.Create(&dept).Error)

	students := []models.Student{
		{RollNo: "CS-001", Name: "Asha Verma", DepartmentID: dept.ID, Semester: 1},
		{RollNo: "CS-002", Name: "Bilal Khan", DepartmentID: dept.ID, Semester: 1},
		{RollNo: "CS-003", Name: "Chaya Rao", DepartmentID: dept.ID, Semester: 1},
	}
	require.NoError(t, db.Create(&students).Error)

	results := []models.Result{
		{StudentID: students[0].ID, Semester: 1, TotalMarks: 100, MarksObtained: 80, Percentage: 80, SGPA: 3.8, CGPA: 3.8, OverallGrade: "C", Status: models.ResultStatusPass},
		{StudentID: students[1].ID, Semester: 1, TotalMarks: 100, MarksObtained: 79, Percentage: 79, SGPA: 3.8, CGPA: 3.8, OverallGrade: "C", Status: models.ResultStatusPass},
		{StudentID: students[2].ID, Semester: 1, TotalMarks: 100, MarksObtained: 60, Percentage: 60, SGPA: 3.2, CGPA: 3.2, OverallGrade: "F", Status: models.ResultStatusPass},
	}
	require.NoError(t, db.Create(&results).Error)
	return dept
}

func TestResultRepositoryUpsertCreatesThenOverwrites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResultRepository(db)

	dept := models.Department{Code: "CS", Name: "Computer Science"}
	require.NoError(t, db.Create(&dept).Error)
	student := models.Student{RollNo: "CS-001", Name: "Asha Verma", DepartmentID: dept.ID, Semester: 1}
	require.NoError(t, db.Create(&student).Error)

	first := models.Result{StudentID: student.ID, Semester: 1, TotalMarks: 100, MarksObtained: 70, Percentage: 70, SGPA: 3.2, CGPA: 3.2, OverallGrade: "F", Status: models.ResultStatusPass}
	require.NoError(t, repo.Upsert(context.Background(), &first))
	require.NotZero(t, first.ID)

	rank := 5
	require.NoError(t, repo.UpdateRank(context.Background(), first.ID, rank))

	second := models.Result{StudentID: student.ID, Semester: 1, TotalMarks: 100, MarksObtained: 85, Percentage: 85, SGPA: 3.6, CGPA: 3.4, OverallGrade: "F", Status: models.ResultStatusPass}
	require.NoError(t, repo.Upsert(context.Background(), &second))
	require.Equal(t, first.ID, second.ID, "regeneration must overwrite the same row")

	var count int64
	require.NoError(t, db.Model(&models.Result{}).Count(&count).Error)
	require.Equal(t, int64(1), count)

	stored, err := repo.GetByStudentSemester(context.Background(), student.ID, 1)
	require.NoError(t, err)
	require.Equal(t, 85.0, stored.MarksObtained)
	require.NotNil(t, stored.Rank, "regeneration must not clear an assigned rank")
	require.Equal(t, rank, *stored.Rank)
}

func TestResultRepositoryGetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResultRepository(db)

	_, err := repo.GetByStudentSemester(context.Background(), 99, 1)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestResultRepositoryListCohortOrdersByCGPADesc(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResultRepository(db)
	dept := seedCohort(t, db)

	cohort, err := repo.ListCohort(context.Background(), dept.ID, 1)
	require.NoError(t, err)
	require.Len(t, cohort, 3)
	require.Equal(t, 3.8, cohort[0].CGPA)
	require.Equal(t, 3.8, cohort[1].CGPA)
	require.Equal(t, 3.2, cohort[2].CGPA)

	cohort, err = repo.ListCohort(context.Background(), dept.ID+1, 1)
	require.NoError(t, err)
	require.Empty(t, cohort)
}

func TestResultRepositoryListByStudentOrdersBySemester(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResultRepository(db)

	dept := models.Department{Code: "CS", Name: "Computer Science"}
	require.NoError(t, db.Create(&dept).Error)
	student := models.Student{RollNo: "CS-001", Name: "Asha Verma", DepartmentID: dept.ID, Semester: 2}
	require.NoError(t, db.Create(&student).Error)

	for _, semester := range []int{2, 1} {
		result := models.Result{StudentID: student.ID, Semester: semester, TotalMarks: 100, MarksObtained: 70, Percentage: 70, SGPA: 3.0, CGPA: 3.0, OverallGrade: "F", Status: models.ResultStatusPass}
		require.NoError(t, repo.Upsert(context.Background(), &result))
	}

	results, err := repo.ListByStudent(context.Background(), student.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, 1, results[0].Semester)
	require.Equal(t, 2, results[1].Semester)
}
