package main

import "github.com/packtime/api/catalog"

// localCourses is the bundled dataset used when no server is
// reachable. It predates the live search integration and still renders
// through the same card path as live results.
var localCourses = []catalog.LocalCourse{
	{
		ID:                "1",
		Code:              "CS 101",
		CourseNumber:      "101",
		Title:             "Introduction to Computer Science",
		Instructor:        "Dr. Sarah Johnson",
		Schedule:          "MWF 9:00 AM - 10:00 AM",
		Credits:           3,
		Enrolled:          28,
		Capacity:          30,
		Location:          "Science Building 201",
		Department:        "Computer Science",
		Days:              []string{"Mon", "Wed", "Fri"},
		CourseCareer:      "Undergraduate",
		ModeOfInstruction: "In Person",
	},
	{
		ID:                "2",
		Code:              "CS 201",
		CourseNumber:      "201",
		Title:             "Data Structures and Algorithms",
		Instructor:        "Prof. Michael Chen",
		Schedule:          "TTh 1:00 PM - 2:30 PM",
		Credits:           4,
		Enrolled:          35,
		Capacity:          35,
		Location:          "Engineering Hall 105",
		Department:        "Computer Science",
		Days:              []string{"Tue", "Thu"},
		CourseCareer:      "Undergraduate",
		ModeOfInstruction: "Hybrid",
	},
	{
		ID:                "3",
		Code:              "MATH 210",
		CourseNumber:      "210",
		Title:             "Calculus II",
		Instructor:        "Dr. Emily Rodriguez",
		Schedule:          "MWF 11:00 AM - 12:00 PM",
		Credits:           4,
		Enrolled:          22,
		Capacity:          30,
		Location:          "Mathematics Building 301",
		Department:        "Mathematics",
		Days:              []string{"Mon", "Wed", "Fri"},
		CourseCareer:      "Undergraduate",
		ModeOfInstruction: "In Person",
	},
	{
		ID:                "4",
		Code:              "PHYS 150",
		CourseNumber:      "150",
		Title:             "General Physics I",
		Instructor:        "Dr. James Wilson",
		Schedule:          "MWF 2:00 PM - 3:00 PM",
		Credits:           3,
		Enrolled:          18,
		Capacity:          25,
		Location:          "Physics Lab 102",
		Department:        "Physics",
		Days:              []string{"Mon", "Wed", "Fri"},
		CourseCareer:      "Undergraduate",
		ModeOfInstruction: "In Person",
	},
	{
		ID:                "5",
		Code:              "CS 305",
		CourseNumber:      "305",
		Title:             "Database Management Systems",
		Instructor:        "Prof. Rachel Kim",
		Schedule:          "TTh 10:00 AM - 11:30 AM",
		Credits:           3,
		Enrolled:          26,
		Capacity:          28,
		Location:          "Computer Lab 220",
		Department:        "Computer Science",
		Days:              []string{"Tue", "Thu"},
		CourseCareer:      "Undergraduate",
		ModeOfInstruction: "Hybrid",
	},
	{
		ID:                "6",
		Code:              "CHEM 101",
		CourseNumber:      "101",
		Title:             "Introduction to Chemistry",
		Instructor:        "Dr. David Martinez",
		Schedule:          "MWF 8:00 AM - 9:00 AM",
		Credits:           4,
		Enrolled:          30,
		Capacity:          32,
		Location:          "Chemistry Building 150",
		Department:        "Chemistry",
		Days:              []string{"Mon", "Wed", "Fri"},
		CourseCareer:      "Undergraduate",
		ModeOfInstruction: "In Person",
	},
	{
		ID:                "7",
		Code:              "BIO 220",
		CourseNumber:      "220",
		Title:             "Cellular Biology",
		Instructor:        "Dr. Lisa Anderson",
		Schedule:          "TTh 2:00 PM - 3:30 PM",
		Credits:           4,
		Enrolled:          24,
		Capacity:          30,
		Location:          "Biology Lab 215",
		Department:        "Biology",
		Days:              []string{"Tue", "Thu"},
		CourseCareer:      "Undergraduate",
		ModeOfInstruction: "In Person",
	},
	{
		ID:                "8",
		Code:              "ENG 200",
		CourseNumber:      "200",
		Title:             "American Literature",
		Instructor:        "Prof. Robert Taylor",
		Schedule:          "MW 3:00 PM - 4:30 PM",
		Credits:           3,
		Enrolled:          20,
		Capacity:          25,
		Location:          "Liberal Arts 310",
		Department:        "English",
		Days:              []string{"Mon", "Wed"},
		CourseCareer:      "Undergraduate",
		ModeOfInstruction: "In Person",
	},
	{
		ID:                "9",
		Code:              "HIST 101",
		CourseNumber:      "101",
		Title:             "World History I",
		Instructor:        "Dr. Patricia Brown",
		Schedule:          "TTh 9:00 AM - 10:30 AM",
		Credits:           3,
		Enrolled:          27,
		Capacity:          30,
		Location:          "Humanities Building 205",
		Department:        "History",
		Days:              []string{"Tue", "Thu"},
		CourseCareer:      "Undergraduate",
		ModeOfInstruction: "In Person",
	},
	{
		ID:                "10",
		Code:              "PSY 101",
		CourseNumber:      "101",
		Title:             "Introduction to Psychology",
		Instructor:        "Dr. Jennifer Lee",
		Schedule:          "MWF 1:00 PM - 2:00 PM",
		Credits:           3,
		Enrolled:          32,
		Capacity:          35,
		Location:          "Social Sciences 180",
		Department:        "Psychology",
		Days:              []string{"Mon", "Wed", "Fri"},
		CourseCareer:      "Undergraduate",
		ModeOfInstruction: "In Person",
	},
	{
		ID:                "11",
		Code:              "CS 401",
		CourseNumber:      "401",
		Title:             "Machine Learning",
		Instructor:        "Prof. Alex Zhang",
		Schedule:          "MW 4:00 PM - 5:30 PM",
		Credits:           3,
		Enrolled:          19,
		Capacity:          20,
		Location:          "AI Research Center 301",
		Department:        "Computer Science",
		Days:              []string{"Mon", "Wed"},
		CourseCareer:      "Graduate",
		ModeOfInstruction: "Synchronous Online",
	},
	{
		ID:                "12",
		Code:              "MATH 310",
		CourseNumber:      "310",
		Title:             "Linear Algebra",
		Instructor:        "Dr. Kevin Park",
		Schedule:          "TTh 11:00 AM - 12:30 PM",
		Credits:           3,
		Enrolled:          15,
		Capacity:          25,
		Location:          "Mathematics Building 205",
		Department:        "Mathematics",
		Days:              []string{"Tue", "Thu"},
		CourseCareer:      "Undergraduate",
		ModeOfInstruction: "In Person",
	},
	{
		ID:                "13",
		Code:              "BIO 500",
		CourseNumber:      "500",
		Title:             "Advanced Molecular Biology",
		Instructor:        "Dr. Amanda Stevens",
		Schedule:          "Asynchronous",
		Credits:           4,
		Enrolled:          12,
		Capacity:          20,
		Location:          "Online",
		Department:        "Biology",
		Days:              []string{},
		CourseCareer:      "Graduate",
		ModeOfInstruction: "Asynchronous Online",
	},
	{
		ID:                "14",
		Code:              "MED 601",
		CourseNumber:      "601",
		Title:             "Human Anatomy",
		Instructor:        "Dr. Robert Chen",
		Schedule:          "MWF 8:00 AM - 11:00 AM",
		Credits:           6,
		Enrolled:          48,
		Capacity:          50,
		Location:          "Medical School Building A",
		Department:        "Biology",
		Days:              []string{"Mon", "Wed", "Fri"},
		CourseCareer:      "Medical School",
		ModeOfInstruction: "In Person",
	},
	{
		ID:                "15",
		Code:              "CS 502",
		CourseNumber:      "502",
		Title:             "Artificial Intelligence",
		Instructor:        "Dr. Linda Wu",
		Schedule:          "TTh 6:00 PM - 8:30 PM",
		Credits:           3,
		Enrolled:          18,
		Capacity:          25,
		Location:          "Engineering Hall 302",
		Department:        "Computer Science",
		Days:              []string{"Tue", "Thu"},
		CourseCareer:      "Graduate",
		ModeOfInstruction: "Hybrid",
	},
}
