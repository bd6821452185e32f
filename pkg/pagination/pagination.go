// Package pagination เก็บ state ของการแบ่งหน้า
//
// มีสอง strategy ในระบบ: categories ดึงมาทั้งหมดแล้ว slice ในหน่วยความจำ
// (ใช้ Window) ส่วน resources อื่นส่ง page/limit ต่อให้ upstream ตรง ๆ
// Info เป็นค่า derived เสมอ คำนวณใหม่จาก response หรือจากความยาว slice
package pagination

// Info ข้อมูลหน้า: {current, pages, total, limit}
type Info struct {
	Current int `json:"current"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
	Limit   int `json:"limit"`
}

// DefaultLimit จำนวนรายการต่อหน้าเมื่อไม่ได้ระบุ
const DefaultLimit = 10

// TotalPages จำนวนหน้าทั้งหมด (อย่างน้อย 1)
func TotalPages(total, limit int) int {
	if limit <= 0 {
		limit = DefaultLimit
	}
	pages := (total + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Clamp บังคับ page ให้อยู่ใน [1, totalPages]
// widget ฝั่ง UI ไม่ validate เอง ดังนั้นห้ามส่งค่านอกช่วงไปถึง data loader
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Compute สร้าง Info จาก (page, limit, total) พร้อม clamp
func Compute(page, limit, total int) Info {
	if limit <= 0 {
		limit = DefaultLimit
	}
	pages := TotalPages(total, limit)
	return Info{
		Current: Clamp(page, pages),
		Pages:   pages,
		Total:   total,
		Limit:   limit,
	}
}

// Window คืนขอบเขต [start, end) สำหรับ slice รายการในหน่วยความจำ
// ใช้กับ client-side pagination (categories)
func Window(page, limit, total int) (start, end int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	page = Clamp(page, TotalPages(total, limit))

	start = (page - 1) * limit
	if start > total {
		start = total
	}
	end = start + limit
	if end > total {
		end = total
	}
	return start, end
}
