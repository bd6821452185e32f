package serviceimpl

import "errors"

// ข้อความ error ภาษาอาหรับที่ dashboard แสดงให้ผู้ใช้
// (ร้านใช้ภาษาอาหรับเป็นหลัก) — สาเหตุจริงถูก log ไว้ฝั่ง server
var (
	ErrCategoriesLoad = errors.New("فشل في تحميل الفئات")
	ErrCategoryCreate = errors.New("فشل في إنشاء الفئة")
	ErrCategoryUpdate = errors.New("فشل في تحديث الفئة")
	ErrCategoryDelete = errors.New("فشل في حذف الفئة")

	ErrProductsLoad  = errors.New("فشل في تحميل المنتجات")
	ErrProductCreate = errors.New("فشل في إضافة المنتج")
	ErrProductUpdate = errors.New("فشل في تحديث المنتج")
	ErrProductDelete = errors.New("فشل في حذف المنتج")

	ErrOrdersLoad  = errors.New("فشل في تحميل الطلبات")
	ErrOrderUpdate = errors.New("فشل في تحديث حالة الطلب")

	ErrCouponsLoad  = errors.New("فشل في تحميل الكوبونات")
	ErrCouponCreate = errors.New("فشل في إنشاء الكوبون")
	ErrCouponUpdate = errors.New("فشل في تحديث الكوبون")
	ErrCouponDelete = errors.New("فشل في حذف الكوبون")

	ErrUsersLoad  = errors.New("فشل في تحميل المستخدمين")
	ErrUserCreate = errors.New("فشل في إنشاء المستخدم")
	ErrUserUpdate = errors.New("فشل في تحديث المستخدم")
	ErrUserDelete = errors.New("فشل في حذف المستخدم")

	ErrLoginFailed    = errors.New("اسم المستخدم أو كلمة المرور غير صحيحة")
	ErrSettingsSave   = errors.New("فشل في حفظ الإعدادات")
	ErrUploadFailed   = errors.New("فشل في رفع الملف")
	ErrUploadTooBig   = errors.New("حجم الملف كبير جداً")
	ErrUploadNotImage = errors.New("الملف ليس صورة")
)
