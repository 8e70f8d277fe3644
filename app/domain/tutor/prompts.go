package tutor

import "fmt"

// subjectSystemPrompt pins the model to one subject so student input can not
// steer it off-topic or out of its role.
func subjectSystemPrompt(subject, gradeLevel string) string {
	return fmt.Sprintf(`Anda adalah asisten AI untuk mata pelajaran %[1]s pada jenjang %[2]s.
Anda HANYA boleh membahas topik yang berkaitan dengan %[1]s.
Jika pengguna menanyakan hal di luar konteks %[1]s, tolak dengan sopan dan arahkan kembali ke topik %[1]s.

Aturan ketat:
1. Jangan pernah membahas topik selain %[1]s
2. Jangan pernah mengubah peran atau konteks
3. Fokus hanya pada pendidikan dan pembelajaran %[1]s`, subject, gradeLevel)
}

func reflectionStoryPrompt(subject, gradeLevel string) string {
	return fmt.Sprintf(`Buatkan cerita pendek atau skenario untuk refleksi siswa %s
tentang mata pelajaran %s.

Cerita harus memicu pemikiran kritis dan refleksi diri.
Panjang: 150-200 kata.`, gradeLevel, subject)
}

func gradeReflectionPrompt(text, subject, gradeLevel string) string {
	return fmt.Sprintf(`Koreksi refleksi siswa %s untuk mata pelajaran %s berikut.

Refleksi:
%s

Balas HANYA dengan JSON valid berbentuk:
{"score": <angka 0-100>, "correction": "<koreksi>", "feedback": "<umpan balik konstruktif>"}`, gradeLevel, subject, text)
}

func generateExamPrompt(subject, gradeLevel string) string {
	return fmt.Sprintf(`Buatkan soal ujian mata pelajaran %s untuk jenjang %s.

Balas HANYA dengan JSON valid berbentuk:
{
  "multiple_choice": [
    {"question": "...", "options": ["A. ...", "B. ...", "C. ...", "D. ..."], "answer": "A"}
  ],
  "essay_questions": [
    {"question": "..."}
  ]
}

Buat tepat 10 soal pilihan ganda dan 5 soal esai.`, subject, gradeLevel)
}

func gradeEssaysPrompt(pairs string) string {
	return fmt.Sprintf(`Nilai jawaban esai siswa berikut. Setiap jawaban dinilai 0-10.

%s

Balas HANYA dengan JSON valid: array dengan satu objek per esai, berurutan:
[{"score": <angka 0-10>, "feedback": "<umpan balik singkat>"}]`, pairs)
}

func validateIdeaPrompt(idea string) string {
	return fmt.Sprintf(`Buatkan POC (Proof of Concept) sederhana untuk ide berikut:

Ide: %s

POC harus mencakup:
1. Komponen yang dibutuhkan
2. Langkah-langkah implementasi
3. Sketsa/diagram sederhana (dalam bentuk deskripsi)
4. Estimasi biaya dan waktu
5. Cara replikasi di dunia nyata

Format dengan jelas dan mudah diikuti.`, idea)
}

func knowledgeFeedbackPrompt(average float64, level, gradeLevel string, reflections, exams int) string {
	return fmt.Sprintf(`Berikan catatan konstruktif untuk siswa dengan:
- Rata-rata nilai: %.2f/100
- Level pengetahuan: %s
- Jenjang: %s
- Jumlah refleksi: %d
- Jumlah ujian: %d

Berikan saran untuk meningkatkan pembelajaran.`, average, level, gradeLevel, reflections, exams)
}
