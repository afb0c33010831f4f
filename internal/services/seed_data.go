package services

import "github.com/biolearn/backend/internal/models"

// Fixed bootstrap content: one chapter and three questions referencing it.
// This is sample data for demos, not a general import mechanism.

var seedChapter = models.Chapter{
	Slug:    "cell-structure",
	Title:   "Struktur dan Fungsi Sel",
	Summary: "Ikhtisar mandiri tentang struktur dasar sel prokariot dan eukariot, membran, organel, dan aliran energi.",
	Objectives: []string{
		"Membedakan sel prokariot dan eukariot",
		"Menjelaskan fungsi organel utama",
		"Mengaitkan struktur membran dengan transport",
	},
	Sections: []models.Section{
		{"heading": "Gambaran Umum Sel", "body": "Sel adalah unit dasar kehidupan."},
		{"heading": "Organel Utama", "body": "Nukleus, mitokondria, ribosom, retikulum endoplasma, dan lain-lain."},
	},
}

var seedQuestions = []models.QuizQuestion{
	{
		ChapterSlug: "cell-structure",
		Question:    "Komponen apakah yang paling berperan langsung dalam fosforilasi oksidatif pada sel eukariot?",
		Options: []string{
			"Ribosom",
			"Mitokondria membran dalam",
			"Aparatus Golgi",
			"Peroksisom",
		},
		CorrectIndex: 1,
		Explanation:  "Rantai transpor elektron dan ATP sintase terletak pada membran dalam mitokondria.",
		Difficulty:   models.DefaultDifficulty,
	},
	{
		ChapterSlug: "cell-structure",
		Question:    "Pada model mosaik fluida, fungsi utama kolesterol dalam membran adalah...",
		Options: []string{
			"Meningkatkan permeabilitas air",
			"Menstabilkan fluiditas pada rentang suhu",
			"Mengaktifkan pompa ion",
			"Mengikat glikoprotein",
		},
		CorrectIndex: 1,
		Explanation:  "Kolesterol membantu menjaga fluiditas membran tetap stabil terhadap perubahan suhu.",
		Difficulty:   models.DefaultDifficulty,
	},
	{
		ChapterSlug: "cell-structure",
		Question:    "Manakah mekanisme transport yang memerlukan energi langsung dari ATP?",
		Options: []string{
			"Difusi sederhana",
			"Osmosis",
			"Difusi terfasilitasi",
			"Transpor aktif primer",
		},
		CorrectIndex: 3,
		Explanation:  "Transpor aktif primer menggunakan energi ATP untuk memompa molekul melawan gradien.",
		Difficulty:   models.DefaultDifficulty,
	},
}
