// internal/app/features/about/divisions.go
package about

// divisionProfile is the static profile rendered at /tentang/{slug}. The
// descriptions are site content, not database records; the team grid on the
// page is the only dynamic part.
type divisionProfile struct {
	Slug        string
	Name        string // matches TeamMember.Division
	FullName    string
	Description string
	Tasks       []string
}

var divisionProfiles = []divisionProfile{
	{
		Slug:        "bph",
		Name:        "BPH",
		FullName:    "Badan Pengurus Harian",
		Description: "Jantung dari organisasi Datasea. BPH bertanggung jawab penuh atas arah gerak, pengambilan keputusan strategis, dan koordinasi antar seluruh elemen komunitas untuk memastikan visi dan misi tercapai.",
		Tasks: []string{
			"Merumuskan arah kebijakan komunitas selama satu periode.",
			"Mengawasi dan mengevaluasi kinerja seluruh divisi.",
			"Mengelola administrasi kesekretariatan dan keuangan organisasi.",
			"Menjadi representasi utama komunitas ke pihak eksternal.",
		},
	},
	{
		Slug:        "hr",
		Name:        "HR",
		FullName:    "Human Resources",
		Description: "Divisi yang berfokus pada manusia di dalam Datasea. HR memastikan setiap anggota merasa nyaman, berkembang, dan memiliki rasa kepemilikan yang tinggi terhadap komunitas.",
		Tasks: []string{
			"Melakukan rekrutmen dan seleksi anggota baru.",
			"Merancang program pengembangan skill organisasi dan kepemimpinan.",
			"Menjaga soliditas antar anggota melalui gathering rutin.",
			"Melakukan penilaian kinerja anggota secara berkala.",
		},
	},
	{
		Slug:        "public-relation",
		Name:        "Public Relation",
		FullName:    "Hubungan Masyarakat",
		Description: "Gardu terdepan komunikasi Datasea. Public Relation membangun citra positif komunitas dan menjembatani komunikasi dengan pihak eksternal, baik kampus maupun industri.",
		Tasks: []string{
			"Mengelola akun media sosial resmi komunitas.",
			"Menjalin kerjasama dengan media partner dan sponsor.",
			"Melakukan kunjungan relasi ke perusahaan teknologi.",
			"Menjadi pusat informasi bagi pihak luar yang ingin mengenal Datasea.",
		},
	},
	{
		Slug:        "media-kreatif",
		Name:        "Media Kreatif",
		FullName:    "Media & Konten Kreatif",
		Description: "Pusat kreativitas visual Datasea. Media Kreatif mengubah informasi menjadi karya visual yang menarik dan mendokumentasikan setiap momen berharga komunitas.",
		Tasks: []string{
			"Membuat desain grafis untuk media sosial dan poster kegiatan.",
			"Melakukan dokumentasi foto dan video setiap agenda komunitas.",
			"Menulis artikel berita seputar kegiatan Datasea.",
			"Menjaga konsistensi visual branding Datasea.",
		},
	},
	{
		Slug:        "it",
		Name:        "IT",
		FullName:    "Teknologi & Informasi",
		Description: "Divisi teknis yang menjadi tulang punggung digital Datasea. Bertanggung jawab atas pengelolaan aset teknologi dan eksplorasi tools baru untuk efisiensi organisasi.",
		Tasks: []string{
			"Mengembangkan dan memelihara website resmi Datasea.",
			"Melakukan riset teknologi baru yang bermanfaat bagi komunitas.",
			"Memberikan dukungan teknis untuk kegiatan operasional.",
			"Mengadakan pelatihan internal terkait web development dan tools produktivitas.",
		},
	},
}

func divisionBySlug(slug string) (divisionProfile, bool) {
	for _, d := range divisionProfiles {
		if d.Slug == slug {
			return d, true
		}
	}
	return divisionProfile{}, false
}
