package models

// RoleType is the role tag carried by a login account
type RoleType string

const (
	RoleAdmin RoleType = "ADMIN"
	RoleSiswa RoleType = "SISWA"
)

// Gender enumerates jenis_kelamin values
type Gender string

const (
	GenderLakiLaki  Gender = "LAKI_LAKI"
	GenderPerempuan Gender = "PEREMPUAN"
)

// Religion enumerates agama values
type Religion string

const (
	ReligionIslam    Religion = "ISLAM"
	ReligionKristen  Religion = "KRISTEN"
	ReligionKatolik  Religion = "KATOLIK"
	ReligionHindu    Religion = "HINDU"
	ReligionBuddha   Religion = "BUDDHA"
	ReligionKonghucu Religion = "KONGHUCU"
)

// LivingWith enumerates tinggal_bersama values
type LivingWith string

const (
	LivingWithOrangTua LivingWith = "ORANG_TUA"
	LivingWithWali     LivingWith = "WALI"
	LivingWithAsrama   LivingWith = "ASRAMA"
	LivingWithKost     LivingWith = "KOST"
	LivingWithLainnya  LivingWith = "LAINNYA"
)
